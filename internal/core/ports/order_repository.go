// Package ports defines the contracts between the MedAssist core and its
// adapters: stores, the unit of work, event publishing and the external
// collaborators (generative AI, catalog search, payment).
package ports

import (
	"context"

	"medassist/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	// Returns errs.ErrObjectAlreadyExists when an order with the same id is stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the progress of an existing order.
	// Returns errs.ErrObjectNotFound when the order is not stored.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its number.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetForUpdate retrieves an order and keeps other writers from changing it
	// until the surrounding unit of work ends. Outside a unit of work it behaves like Get.
	// Returns errs.ErrObjectNotFound when no such order exists.
	GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error)

	// List returns the stored orders newest first, in reverse insertion order.
	// order.UnknownKind lists every kind.
	//
	// Example:
	//   bookings, err := repo.List(ctx, order.LabTest)
	//   if err != nil {
	//       return fmt.Errorf("failed to list bookings: %w", err)
	//   }
	List(ctx context.Context, kind order.Kind) ([]*order.Order, error)
}
