// Package queries contains read-only operations over the MedAssist stores.
// Each query is a validated value object with a handler that returns views
// shaped for the tracking screens.
package queries

import (
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/order"
)

// OrderView is an order as the tracking screen renders it.
// Stepper visuals are derived from Steps only.
type OrderView struct {
	ID             order.ID
	Kind           order.Kind
	Title          string
	Details        string
	ItemNames      []string
	Status         string
	Amount         kernel.Money
	CreatedAt      time.Time
	Steps          []StepView
	CompletedSteps int
	DeliveryAgent  *ContactView
	InvoiceURL     string
	ReportURL      string
}

// StepView is one stepper entry. Timestamp is empty for pending steps.
type StepView struct {
	Label       string
	Timestamp   string
	IsCompleted bool
}

// ContactView is the person the patient can call about an order.
type ContactView struct {
	Name  string
	Phone string
}

// NewOrderView projects an order aggregate.
func NewOrderView(o *order.Order) OrderView {
	steps := o.Steps()
	stepViews := make([]StepView, 0, len(steps))
	for _, s := range steps {
		ts, _ := s.Timestamp()
		stepViews = append(stepViews, StepView{
			Label:       s.Label(),
			Timestamp:   ts,
			IsCompleted: s.IsCompleted(),
		})
	}

	view := OrderView{
		ID:             o.ID(),
		Kind:           o.Kind(),
		Title:          o.Title(),
		Details:        o.Details(),
		ItemNames:      o.ItemNames(),
		Status:         o.Status(),
		Amount:         o.Amount(),
		CreatedAt:      o.CreatedAt(),
		Steps:          stepViews,
		CompletedSteps: o.CompletedSteps(),
		InvoiceURL:     o.InvoiceURL(),
		ReportURL:      o.ReportURL(),
	}
	if agent, ok := o.DeliveryAgent(); ok {
		view.DeliveryAgent = &ContactView{Name: agent.Name(), Phone: agent.Phone()}
	}
	return view
}
