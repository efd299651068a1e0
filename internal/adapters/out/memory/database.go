// Package memory keeps orders, notifications and the chat transcript in
// process memory. It is the default store of the service.
//
// Writers are serialized by a single writer lock: a unit of work holds it
// from Begin until Commit or Rollback, and a write outside a unit of work
// holds it for the duration of that write. Readers never wait for a unit of
// work and may observe its uncommitted changes.
package memory

import (
	"slices"
	"sync"

	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/notification"
	"medassist/internal/core/domain/model/order"
)

// Database is the shared in-memory state behind every repository of this package.
type Database struct {
	writer sync.Mutex
	mu     sync.RWMutex

	// orders and notifications are kept in insertion order and listed in reverse.
	orders            []*order.Order
	orderIndex        map[order.ID]int
	notifications     []*notification.Notification
	notificationIndex map[kernel.UUID]int
	messages          []*chat.Message
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{
		orderIndex:        make(map[order.ID]int),
		notificationIndex: make(map[kernel.UUID]int),
	}
}

// snapshot captures the transactional tables. Stored aggregates are never
// mutated in place, so copying the slices and indexes is enough.
type snapshot struct {
	orders            []*order.Order
	orderIndex        map[order.ID]int
	notifications     []*notification.Notification
	notificationIndex map[kernel.UUID]int
}

func (db *Database) snapshot() snapshot {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return snapshot{
		orders:            slices.Clone(db.orders),
		orderIndex:        cloneMap(db.orderIndex),
		notifications:     slices.Clone(db.notifications),
		notificationIndex: cloneMap(db.notificationIndex),
	}
}

func (db *Database) restore(s snapshot) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.orders = s.orders
	db.orderIndex = s.orderIndex
	db.notifications = s.notifications
	db.notificationIndex = s.notificationIndex
}

// lockWriter takes the writer lock unless the caller already holds it through a unit of work.
func (db *Database) lockWriter(inTx bool) func() {
	if inTx {
		return func() {}
	}
	db.writer.Lock()
	return db.writer.Unlock
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
