// Package genai adapts the Gemini generateContent API, through the official
// google.golang.org/genai SDK, to the chat, image analysis and catalog search ports.
package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"medassist/internal/core/ports"

	genaisdk "google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second
)

var (
	// ErrMissingCredential is returned by every call when no API key is configured.
	ErrMissingCredential = fmt.Errorf("%w: generative API key is not configured", ports.ErrExternalServiceFailure)
	// ErrEmptyResponse is returned when the model answers without text.
	ErrEmptyResponse = fmt.Errorf("%w: empty model response", ports.ErrExternalServiceFailure)
)

// Client serves ports.ChatCompleter, ports.ImageAnalyzer and ports.CatalogSearcher.
type Client struct {
	models *genaisdk.Models
	model  string
	logger *slog.Logger
}

type settings struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*settings)

// WithBaseURL points the client at another host, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// WithModel selects the model name.
func WithModel(model string) Option {
	return func(s *settings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithHTTPClient replaces the default client with a 30s timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		if hc != nil {
			s.httpClient = hc
		}
	}
}

// NewClient creates a client. An empty apiKey is accepted; no SDK client is
// built and calls fail with ErrMissingCredential.
func NewClient(ctx context.Context, apiKey string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := settings{
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(&s)
	}

	c := &Client{
		model:  s.model,
		logger: logger.With("component", "genai_client"),
	}
	if apiKey == "" {
		return c, nil
	}

	sdk, err := genaisdk.NewClient(ctx, &genaisdk.ClientConfig{
		APIKey:      apiKey,
		Backend:     genaisdk.BackendGeminiAPI,
		HTTPClient:  s.httpClient,
		HTTPOptions: genaisdk.HTTPOptions{BaseURL: s.baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create generative client: %w", err)
	}
	c.models = sdk.Models
	return c, nil
}

// generate sends contents and returns the text of the first candidate.
func (c *Client) generate(ctx context.Context, contents []*genaisdk.Content, config *genaisdk.GenerateContentConfig) (string, error) {
	if c.models == nil {
		return "", ErrMissingCredential
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		var apiErr genaisdk.APIError
		if errors.As(err, &apiErr) {
			c.logger.WarnContext(ctx, "generateContent rejected",
				"model", c.model,
				"status", apiErr.Code,
				"duration", time.Since(start),
			)
			return "", fmt.Errorf("%w: status %d: %s", ports.ErrExternalServiceFailure, apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("%w: %w", ports.ErrExternalServiceFailure, err)
	}

	c.logger.DebugContext(ctx, "generateContent finished",
		"model", c.model,
		"duration", time.Since(start),
	)

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// IsMissingCredential reports whether err comes from an unconfigured client.
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}
