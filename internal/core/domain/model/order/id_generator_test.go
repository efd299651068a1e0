package order_test

import (
	"strconv"
	"sync"
	"testing"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIDGenerator_RangesPerKind(t *testing.T) {
	g := order.NewRandomIDGenerator()

	for range 100 {
		n, err := strconv.Atoi(g.Next(order.LabTest).String())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 5000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestRandomIDGenerator_FallsBackWhenCrowded(t *testing.T) {
	always := func(int) int { return 0 }
	g := order.NewRandomIDGeneratorWithSource(always)

	first := g.Next(order.Medicine)
	second := g.Next(order.Medicine)
	third := g.Next(order.Medicine)

	assert.Equal(t, order.ID("1000"), first)
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
	require.NoError(t, second.Validate())
	require.NoError(t, third.Validate())
}

func TestRandomIDGenerator_Reserve(t *testing.T) {
	always := func(int) int { return 0 }
	g := order.NewRandomIDGeneratorWithSource(always)
	g.Reserve("1000")

	assert.NotEqual(t, order.ID("1000"), g.Next(order.Medicine))
}

func TestRandomIDGenerator_Concurrent(t *testing.T) {
	g := order.NewRandomIDGenerator()
	var (
		mu   sync.Mutex
		seen = make(map[order.ID]struct{})
		wg   sync.WaitGroup
	)

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				id := g.Next(order.Medicine)
				mu.Lock()
				_, dup := seen[id]
				seen[id] = struct{}{}
				mu.Unlock()
				assert.False(t, dup)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 800)
}

func TestParseID(t *testing.T) {
	id, err := order.ParseID("4821")
	require.NoError(t, err)
	assert.Equal(t, "4821", id.String())

	_, err = order.ParseID("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.ParseID("48a1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
