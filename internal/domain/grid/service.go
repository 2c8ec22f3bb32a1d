package grid

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/platform/backend"
	"github.com/evalhub/evalhub/internal/platform/odata"
)

// Backend is the slice of the query backend client the grid service needs.
type Backend interface {
	QueryCollection(ctx context.Context, collection string, q backend.Query) (*backend.Page, error)
}

// Config binds one entity collection to its filter and sort compilers.
type Config struct {
	// Collection is the backend collection name, e.g. "tests".
	Collection string

	// CompileFilter turns a grid filter model into a $filter expression.
	CompileFilter func(odata.FilterModel) string

	// CompileSort turns a grid sort model into an $orderby expression.
	CompileSort func([]odata.SortItem) string

	// WildcardFilter turns a free-text search term into a $filter expression.
	WildcardFilter func(string) string
}

// Result is one page of rows returned from the backend.
type Result struct {
	Rows  []json.RawMessage `json:"rows"`
	Total int64             `json:"total"`
}

// Service compiles grid query state into backend query options and executes
// the query.
type Service struct {
	backend Backend
	cfg     Config
	logger  zerolog.Logger
}

// NewService creates a grid query service for one entity collection.
func NewService(b Backend, cfg Config, logger zerolog.Logger) *Service {
	return &Service{
		backend: b,
		cfg:     cfg,
		logger:  logger.With().Str("collection", cfg.Collection).Logger(),
	}
}

// Query executes a structured grid query: filter model, quick-filter terms,
// and sort model, with limit/offset paging.
func (s *Service) Query(ctx context.Context, req odata.GridRequest, limit, offset int) (*Result, error) {
	model := req.Filter
	if len(req.QuickFilter) > 0 {
		// Quick-filter terms ride along as a pseudo-item so the family
		// compiler applies its own search fields and tag handling.
		model.Items = append(model.Items, odata.FilterItem{
			Field:    odata.QuickFilterField,
			Operator: "contains",
			Value:    req.QuickFilter,
		})
	}

	q := backend.Query{
		Filter:  s.cfg.CompileFilter(model),
		OrderBy: s.cfg.CompileSort(req.Sort),
		Top:     limit,
		Skip:    offset,
		Count:   true,
	}

	s.logger.Debug().
		Str("filter", q.Filter).
		Str("orderby", q.OrderBy).
		Msg("compiled grid query")

	page, err := s.backend.QueryCollection(ctx, s.cfg.Collection, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.cfg.Collection, err)
	}

	return &Result{Rows: page.Value, Total: page.Count}, nil
}

// List executes a plain listing with an optional free-text search term.
func (s *Service) List(ctx context.Context, search string, limit, offset int) (*Result, error) {
	q := backend.Query{
		Top:   limit,
		Skip:  offset,
		Count: true,
	}
	if search != "" {
		q.Filter = s.cfg.WildcardFilter(search)
	}

	page, err := s.backend.QueryCollection(ctx, s.cfg.Collection, q)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.cfg.Collection, err)
	}

	return &Result{Rows: page.Value, Total: page.Count}, nil
}
