package queries

import (
	"errors"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the tracked orders, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(order.LabTest)
//	views, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	kind order.Kind

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query. order.UnknownKind lists every kind.
func NewListOrdersQuery(kind order.Kind) (ListOrdersQuery, error) {
	if kind != order.UnknownKind {
		if err := kind.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Kind returns the filter, order.UnknownKind for none.
func (q ListOrdersQuery) Kind() order.Kind {
	return q.kind
}
