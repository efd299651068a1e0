package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"medassist/internal/core/domain/model/catalog"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"
)

var (
	ErrSearchCatalogQueryIsNotConstructed = errors.New(
		"SearchCatalogQuery must be created via NewSearchCatalogQuery constructor",
	)
	ErrSearchTermIsRequired = errs.NewValueIsRequiredError("q")
)

// SearchCatalogQuery looks up medicines and lab tests by free text.
type SearchCatalogQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchCatalogQuery trims and validates term.
func NewSearchCatalogQuery(term string) (SearchCatalogQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchCatalogQuery{}, ErrSearchTermIsRequired
	}
	return SearchCatalogQuery{term: term, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchCatalogQuery) Validate() error {
	return q.guard.Validate(ErrSearchCatalogQueryIsNotConstructed)
}

// Term returns the search text.
func (q SearchCatalogQuery) Term() string {
	return q.term
}

// SearchCatalogQueryHandler asks the catalog searcher. A failing searcher
// yields an empty result, never an error.
type SearchCatalogQueryHandler struct {
	searcher ports.CatalogSearcher
	logger   *slog.Logger
}

// NewSearchCatalogQueryHandler creates the handler.
func NewSearchCatalogQueryHandler(searcher ports.CatalogSearcher, logger *slog.Logger) SearchCatalogQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SearchCatalogQueryHandler{searcher: searcher, logger: logger.With("component", "search_catalog")}
}

// Handle returns matching items, possibly none.
func (h SearchCatalogQueryHandler) Handle(ctx context.Context, query SearchCatalogQuery) ([]catalog.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.searcher.Search(ctx, query.Term())
	if err != nil {
		h.logger.WarnContext(ctx, "catalog search failed", "query", query.Term(), "error", err)
		return []catalog.Item{}, nil
	}
	if items == nil {
		items = []catalog.Item{}
	}
	return items, nil
}
