package guard_test

import (
	"errors"
	"sync"
	"testing"

	"medassist/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCartNotConstructed = errors.New("cart must be created via newCart")

type cart struct {
	items []string
	guard guard.ConstructorGuard
}

func newCart(items ...string) cart {
	return cart{items: items, guard: guard.NewConstructorGuard()}
}

func (c cart) Validate() error {
	return c.guard.Validate(errCartNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes with custom error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("constructed guard passes with nil error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("booking not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	t.Run("constructor-built value is valid", func(t *testing.T) {
		c := newCart("Paracetamol", "Vitamin C")

		require.NoError(t, c.Validate())
		assert.Len(t, c.items, 2)
	})

	t.Run("literal value is rejected", func(t *testing.T) {
		c := cart{items: []string{"Paracetamol"}}

		require.ErrorIs(t, c.Validate(), errCartNotConstructed)
	})

	t.Run("copies keep the constructed flag", func(t *testing.T) {
		original := newCart("Metformin")
		copied := original

		require.NoError(t, copied.Validate())
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(errCartNotConstructed))
		}()
	}

	wg.Wait()
}
