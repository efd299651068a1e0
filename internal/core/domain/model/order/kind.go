package order

import (
	"fmt"

	"medassist/internal/pkg/errs"
)

// Kind is the type of an order. It decides the step template, the id range
// and who the patient can contact.
type Kind int

const (
	// UnknownKind is the invalid zero value.
	UnknownKind Kind = iota
	// Medicine is a pharmacy cart checkout delivered to the patient.
	Medicine
	// LabTest is a booked diagnostic test with home sample collection.
	LabTest
)

// Step labels of the medicine delivery flow.
const (
	LabelOrderPlaced    = "Order Placed"
	LabelConfirmed      = "Confirmed"
	LabelShipped        = "Shipped"
	LabelOutForDelivery = "Out for Delivery"
	LabelDelivered      = "Delivered"
)

// Step labels of the lab-test flow. LabelConfirmed is shared.
const (
	LabelBooked          = "Booked"
	LabelSampleCollected = "Sample Collected"
	LabelReportReady     = "Report Ready"
	LabelCompleted       = "Completed"
)

// Timestamps written on the steps completed at creation.
const (
	TimestampJustNow    = "Just now"
	TimestampProcessing = "Processing..."
)

// initiallyCompletedSteps is how many template steps are completed on creation.
const initiallyCompletedSteps = 2

type kindProfile struct {
	name       string
	title      string
	labels     []string
	idMin      int
	idMax      int
	agentName  string
	agentPhone string
}

func getKindProfiles() map[Kind]kindProfile {
	return map[Kind]kindProfile{
		Medicine: {
			name:       "medicine",
			title:      "Medicine Order",
			labels:     []string{LabelOrderPlaced, LabelConfirmed, LabelShipped, LabelOutForDelivery, LabelDelivered},
			idMin:      1000,
			idMax:      9999,
			agentName:  "Rajesh Kumar",
			agentPhone: "+91 98765 43210",
		},
		LabTest: {
			name:       "lab_test",
			title:      "Lab Test",
			labels:     []string{LabelBooked, LabelConfirmed, LabelSampleCollected, LabelReportReady, LabelCompleted},
			idMin:      5000,
			idMax:      9999,
			agentName:  "Sunita Sharma (Phlebotomist)",
			agentPhone: "+91 91234 56789",
		},
	}
}

// ParseKind maps the wire name ("medicine", "lab_test") to a Kind.
func ParseKind(s string) (Kind, error) {
	for kind, profile := range getKindProfiles() {
		if profile.name == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known order kind", s))
}

// Validate rejects UnknownKind and out-of-range values.
func (k Kind) Validate() error {
	if _, ok := getKindProfiles()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

// String returns the wire name, or "unknown".
func (k Kind) String() string {
	if profile, ok := getKindProfiles()[k]; ok {
		return profile.name
	}
	return "unknown"
}

// Title returns the human-readable name, such as "Medicine Order".
func (k Kind) Title() string {
	if profile, ok := getKindProfiles()[k]; ok {
		return profile.title
	}
	return "Order"
}

// StepLabels returns a copy of the kind's step template.
func (k Kind) StepLabels() []string {
	profile := getKindProfiles()[k]
	labels := make([]string, len(profile.labels))
	copy(labels, profile.labels)
	return labels
}

// initialSteps builds the template with the first initiallyCompletedSteps completed.
func (k Kind) initialSteps() []Step {
	timestamps := [initiallyCompletedSteps]string{TimestampJustNow, TimestampProcessing}

	labels := k.StepLabels()
	steps := make([]Step, 0, len(labels))
	for i, label := range labels {
		if i < initiallyCompletedSteps {
			steps = append(steps, mustCompletedStep(label, timestamps[i]))
			continue
		}
		steps = append(steps, mustPendingStep(label))
	}
	return steps
}

func (k Kind) idRange() (int, int) {
	profile := getKindProfiles()[k]
	return profile.idMin, profile.idMax
}
