package order

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"

	"medassist/internal/pkg/errs"
)

// maxRandomDraws bounds retries inside a kind's range before the generator
// falls back to suffixed ids.
const maxRandomDraws = 32

// ID is the numeric order number shown to patients, e.g. "4821".
type ID string

// ParseID validates a numeric order number.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate requires a non-empty string of ASCII digits.
func (id ID) Validate() error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q is not numeric", string(id)))
		}
	}
	return nil
}

// String returns the order number.
func (id ID) String() string {
	return string(id)
}

// IDGenerator issues order numbers.
type IDGenerator interface {
	Next(kind Kind) ID
}

// RandomIDGenerator draws four-digit numbers from the kind's range and never
// issues the same id twice in a process. When the range is crowded it appends
// a sequence number, so uniqueness holds past 9000 orders.
type RandomIDGenerator struct {
	mu     sync.Mutex
	issued map[ID]struct{}
	seq    uint64
	intN   func(n int) int
}

// NewRandomIDGenerator creates a generator backed by math/rand/v2.
func NewRandomIDGenerator() *RandomIDGenerator {
	return &RandomIDGenerator{
		issued: make(map[ID]struct{}),
		intN:   rand.IntN,
	}
}

// NewRandomIDGeneratorWithSource is NewRandomIDGenerator with an injected
// random source, used by tests to force collisions.
func NewRandomIDGeneratorWithSource(intN func(n int) int) *RandomIDGenerator {
	g := NewRandomIDGenerator()
	g.intN = intN
	return g
}

// Reserve marks ids loaded from persistence as taken.
func (g *RandomIDGenerator) Reserve(ids ...ID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		g.issued[id] = struct{}{}
	}
}

// Next returns an id that has not been issued or reserved before.
func (g *RandomIDGenerator) Next(kind Kind) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	lo, hi := kind.idRange()
	if hi < lo {
		lo, hi = 1000, 9999
	}

	for range maxRandomDraws {
		id := ID(strconv.Itoa(lo + g.intN(hi-lo+1)))
		if _, taken := g.issued[id]; !taken {
			g.issued[id] = struct{}{}
			return id
		}
	}

	for {
		g.seq++
		id := ID(fmt.Sprintf("%d%04d", lo+g.intN(hi-lo+1), g.seq))
		if _, taken := g.issued[id]; !taken {
			g.issued[id] = struct{}{}
			return id
		}
	}
}
