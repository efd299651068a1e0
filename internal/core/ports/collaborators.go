package ports

import (
	"context"
	"errors"
	"time"

	"medassist/internal/core/domain/model/catalog"
	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/domain/model/kernel"
)

// ErrExternalServiceFailure marks any failure of an external collaborator.
// Callers degrade to a fallback instead of propagating it to the patient.
var ErrExternalServiceFailure = errors.New("external service failure")

// ChatCompleter answers a patient message given the previous conversation.
type ChatCompleter interface {
	Complete(ctx context.Context, history []*chat.Message, message string) (string, error)
}

// ImageAnalyzer describes a medical image or document following an instruction.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType, instruction string) (string, error)
}

// CatalogSearcher finds medicines and lab tests matching a free-text query.
type CatalogSearcher interface {
	Search(ctx context.Context, query string) ([]catalog.Item, error)
}

// PaymentMethod is how the patient pays at checkout.
type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "upi"
	PaymentCard       PaymentMethod = "card"
	PaymentNetBanking PaymentMethod = "netbanking"
	PaymentCOD        PaymentMethod = "cod"
)

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentUPI, PaymentCard, PaymentNetBanking, PaymentCOD:
		return true
	default:
		return false
	}
}

// PaymentRequest is one checkout payment.
type PaymentRequest struct {
	Amount kernel.Money
	Method PaymentMethod
}

// PaymentReceipt confirms a simulated payment.
type PaymentReceipt struct {
	Reference string
	Amount    kernel.Money
	Method    PaymentMethod
	PaidAt    time.Time
}

// PaymentSimulator stands in for a payment gateway. No money moves.
type PaymentSimulator interface {
	Pay(ctx context.Context, req PaymentRequest) (PaymentReceipt, error)
}
