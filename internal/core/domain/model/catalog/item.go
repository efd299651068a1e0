// Package catalog holds the medicines and lab tests the assistant can find.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Type tells medicines from lab tests.
type Type string

const (
	TypeMedicine Type = "medicine"
	TypeLabTest  Type = "lab_test"
)

// Item is one search result. Search results come from an external service,
// so the struct tags carry the schema every result must satisfy: medicines
// name a category, lab tests name their preparation.
type Item struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Type        Type            `json:"type" validate:"oneof=medicine lab_test"`
	Category    string          `json:"category,omitempty" validate:"required_if=Type medicine"`
	Preparation string          `json:"preparation,omitempty" validate:"required_if=Type lab_test"`
}

// IsMedicine reports whether the item can be put in the pharmacy cart.
func (i Item) IsMedicine() bool {
	return i.Type == TypeMedicine
}
