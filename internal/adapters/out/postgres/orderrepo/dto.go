// Package orderrepo persists orders with GORM. Steps are kept as a JSONB
// column and the medicine names as a text array; seq preserves insertion
// order for newest-first listing.
package orderrepo

import (
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/order"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO maps an order onto the orders table.
type OrderDTO struct {
	ID         string                      `gorm:"primaryKey"`
	Seq        int64                       `gorm:"->"`
	Kind       string                      `gorm:"index"`
	Title      string
	Details    string
	ItemNames  pq.StringArray              `gorm:"type:text[]"`
	Amount     decimal.Decimal             `gorm:"type:numeric(12,2)"`
	Status     string
	Steps      datatypes.JSONSlice[StepDTO] `gorm:"type:jsonb"`
	AgentName  *string
	AgentPhone *string
	InvoiceURL string
	ReportURL  string
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// StepDTO is one element of the steps column.
type StepDTO struct {
	Label       string `json:"label"`
	Timestamp   string `json:"timestamp,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// updatableColumns are written by Update. id, seq, kind and created_at never change.
var updatableColumns = []string{
	"title", "details", "item_names", "amount", "status", "steps",
	"agent_name", "agent_phone", "invoice_url", "report_url",
}

func fromDomain(o *order.Order) OrderDTO {
	names := o.ItemNames()
	if names == nil {
		names = []string{}
	}

	steps := make([]StepDTO, 0, len(o.Steps()))
	for _, s := range o.Steps() {
		ts, _ := s.Timestamp()
		steps = append(steps, StepDTO{Label: s.Label(), Timestamp: ts, IsCompleted: s.IsCompleted()})
	}

	dto := OrderDTO{
		ID:         o.ID().String(),
		Kind:       o.Kind().String(),
		Title:      o.Title(),
		Details:    o.Details(),
		ItemNames:  pq.StringArray(names),
		Amount:     o.Amount().Amount(),
		Status:     o.Status(),
		Steps:      datatypes.NewJSONSlice(steps),
		InvoiceURL: o.InvoiceURL(),
		ReportURL:  o.ReportURL(),
		CreatedAt:  o.CreatedAt(),
	}
	if agent, ok := o.DeliveryAgent(); ok {
		name, phone := agent.Name(), agent.Phone()
		dto.AgentName = &name
		dto.AgentPhone = &phone
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}
	kind, err := order.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	steps := make([]order.Step, 0, len(dto.Steps))
	for _, s := range dto.Steps {
		step, stepErr := stepToDomain(s)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	var agent *kernel.Contact
	if dto.AgentName != nil && dto.AgentPhone != nil {
		c, contactErr := kernel.NewContact(*dto.AgentName, *dto.AgentPhone)
		if contactErr != nil {
			return nil, contactErr
		}
		agent = &c
	}

	var names []string
	if len(dto.ItemNames) > 0 {
		names = []string(dto.ItemNames)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:            id,
		Kind:          kind,
		Title:         dto.Title,
		Details:       dto.Details,
		ItemNames:     names,
		Amount:        amount,
		CreatedAt:     dto.CreatedAt,
		Steps:         steps,
		DeliveryAgent: agent,
		InvoiceURL:    dto.InvoiceURL,
		ReportURL:     dto.ReportURL,
	})
}

func stepToDomain(s StepDTO) (order.Step, error) {
	if s.IsCompleted {
		return order.NewCompletedStep(s.Label, s.Timestamp)
	}
	return order.NewPendingStep(s.Label)
}
