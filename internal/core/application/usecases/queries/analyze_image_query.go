package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"medassist/internal/core/ports"
	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"
)

// MaxImageSize bounds an uploaded image or document.
const MaxImageSize = 10 << 20

// DefaultAnalysisInstruction is used when the patient gives no instruction.
const DefaultAnalysisInstruction = "Analyze this medical image or document. Summarize the key findings in simple language " +
	"and mention anything that needs a doctor's attention."

// AnalysisFallback is returned when the image analyzer fails.
const AnalysisFallback = "Sorry, I couldn't analyze this file right now. Please try again later."

var (
	ErrAnalyzeImageQueryIsNotConstructed = errors.New(
		"AnalyzeImageQuery must be created via NewAnalyzeImageQuery constructor",
	)
	ErrImageIsRequired = errs.NewValueIsRequiredError("image")
)

// AnalyzeImageQuery asks for a plain-language reading of a medical image or report.
type AnalyzeImageQuery struct {
	image       []byte
	mimeType    string
	instruction string

	guard guard.ConstructorGuard
}

// NewAnalyzeImageQuery validates the upload. Images and PDF documents are accepted.
func NewAnalyzeImageQuery(image []byte, mimeType, instruction string) (AnalyzeImageQuery, error) {
	var errList []error
	switch {
	case len(image) == 0:
		errList = append(errList, ErrImageIsRequired)
	case len(image) > MaxImageSize:
		errList = append(errList, errs.NewValueIsOutOfRangeError("image", len(image), 1, MaxImageSize))
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if !strings.HasPrefix(mimeType, "image/") && mimeType != "application/pdf" {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"mimeType", fmt.Errorf("%q is not an image or PDF", mimeType),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return AnalyzeImageQuery{}, err
	}

	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		instruction = DefaultAnalysisInstruction
	}

	return AnalyzeImageQuery{
		image:       image,
		mimeType:    mimeType,
		instruction: instruction,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AnalyzeImageQuery) Validate() error {
	return q.guard.Validate(ErrAnalyzeImageQueryIsNotConstructed)
}

// Image returns the uploaded bytes.
func (q AnalyzeImageQuery) Image() []byte { return q.image }

// MimeType returns the normalized content type.
func (q AnalyzeImageQuery) MimeType() string { return q.mimeType }

// Instruction returns what the patient wants to know.
func (q AnalyzeImageQuery) Instruction() string { return q.instruction }

// AnalyzeImageQueryHandler forwards the upload to the image analyzer and
// degrades to AnalysisFallback on failure.
type AnalyzeImageQueryHandler struct {
	analyzer ports.ImageAnalyzer
	logger   *slog.Logger
}

// NewAnalyzeImageQueryHandler creates the handler.
func NewAnalyzeImageQueryHandler(analyzer ports.ImageAnalyzer, logger *slog.Logger) AnalyzeImageQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return AnalyzeImageQueryHandler{analyzer: analyzer, logger: logger.With("component", "analyze_image")}
}

// Handle returns the analysis text.
func (h AnalyzeImageQueryHandler) Handle(ctx context.Context, query AnalyzeImageQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	text, err := h.analyzer.Analyze(ctx, query.Image(), query.MimeType(), query.Instruction())
	if err != nil || strings.TrimSpace(text) == "" {
		h.logger.WarnContext(ctx, "image analysis failed", "mime_type", query.MimeType(), "error", err)
		return AnalysisFallback, nil
	}
	return text, nil
}
