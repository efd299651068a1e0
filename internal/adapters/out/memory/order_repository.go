package memory

import (
	"context"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/order"
	"medassist/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over a Database.
// It stores and hands out copies, so callers must Update to persist changes.
type OrderRepository struct {
	db   *Database
	inTx bool
}

// NewOrderRepository creates a repository that is not bound to a unit of work.
func NewOrderRepository(db *Database) *OrderRepository {
	return &OrderRepository{db: db}
}

// Add stores a new order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	defer r.db.lockWriter(r.inTx)()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.orderIndex[aggregate.ID()]; ok {
		return errs.NewObjectAlreadyExistsError("order", aggregate.ID().String())
	}
	r.db.orderIndex[aggregate.ID()] = len(r.db.orders)
	r.db.orders = append(r.db.orders, stored)
	return nil
}

// Update replaces a stored order, keeping its position in the list.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	defer r.db.lockWriter(r.inTx)()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i, ok := r.db.orderIndex[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	r.db.orders[i] = stored
	return nil
}

// Get returns a copy of the stored order.
func (r *OrderRepository) Get(_ context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	i, ok := r.db.orderIndex[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return cloneOrder(r.db.orders[i])
}

// GetForUpdate returns a copy of the stored order. Inside a unit of work the
// writer lock taken by Begin already excludes other writers; outside one the
// order is read under that lock.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	defer r.db.lockWriter(r.inTx)()
	return r.Get(ctx, id)
}

// List returns copies of the stored orders, newest first.
func (r *OrderRepository) List(_ context.Context, kind order.Kind) ([]*order.Order, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*order.Order, 0, len(r.db.orders))
	for i := len(r.db.orders) - 1; i >= 0; i-- {
		o := r.db.orders[i]
		if kind != order.UnknownKind && o.Kind() != kind {
			continue
		}
		c, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	var agent *kernel.Contact
	if a, ok := o.DeliveryAgent(); ok {
		agent = &a
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:            o.ID(),
		Kind:          o.Kind(),
		Title:         o.Title(),
		Details:       o.Details(),
		ItemNames:     o.ItemNames(),
		Amount:        o.Amount(),
		CreatedAt:     o.CreatedAt(),
		Steps:         o.Steps(),
		DeliveryAgent: agent,
		InvoiceURL:    o.InvoiceURL(),
		ReportURL:     o.ReportURL(),
	})
}
