// Package staticcatalog serves catalog search from a list compiled into the
// binary. It answers when the generative search is unavailable.
package staticcatalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"medassist/internal/core/domain/model/catalog"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/validation"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog is a fixed, read-only item list.
type Catalog struct {
	items []catalog.Item
}

// New loads the embedded catalog.
func New() (*Catalog, error) {
	return Parse(catalogJSON)
}

// Parse decodes and validates a JSON array of items.
func Parse(data []byte) (*Catalog, error) {
	var items []catalog.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	v := validation.New()
	for i, item := range items {
		if err := v.Struct(item); err != nil {
			return nil, fmt.Errorf("catalog item %d (%s): %w", i, item.ID, err)
		}
	}
	return &Catalog{items: items}, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Search returns items whose name, description or category contains every
// word of query, case-insensitively. Item order follows the catalog.
func (c *Catalog) Search(_ context.Context, query string) ([]catalog.Item, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return []catalog.Item{}, nil
	}

	found := make([]catalog.Item, 0)
	for _, item := range c.items {
		haystack := strings.ToLower(item.Name + " " + item.Description + " " + item.Category)
		if !slices.ContainsFunc(words, func(w string) bool { return !strings.Contains(haystack, w) }) {
			found = append(found, item)
		}
	}
	return found, nil
}

// FallbackSearcher asks primary first and falls back to secondary when
// primary fails.
type FallbackSearcher struct {
	primary   ports.CatalogSearcher
	secondary ports.CatalogSearcher
	logger    *slog.Logger
}

// NewFallbackSearcher chains two searchers.
func NewFallbackSearcher(primary, secondary ports.CatalogSearcher, logger *slog.Logger) *FallbackSearcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackSearcher{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With("component", "catalog_fallback"),
	}
}

// Search implements ports.CatalogSearcher.
func (s *FallbackSearcher) Search(ctx context.Context, query string) ([]catalog.Item, error) {
	items, err := s.primary.Search(ctx, query)
	if err == nil {
		return items, nil
	}

	s.logger.InfoContext(ctx, "primary catalog search failed, using static catalog", "error", err)
	return s.secondary.Search(ctx, query)
}
