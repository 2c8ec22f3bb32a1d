package grid

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/platform/backend"
	"github.com/evalhub/evalhub/internal/platform/odata"
	"github.com/evalhub/evalhub/pkg/pagination"
)

// Handler exposes the grid query endpoints for one entity collection.
type Handler struct {
	service *Service
	logger  zerolog.Logger
}

// NewHandler creates a Handler for the given service.
func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the endpoints on the given route group:
//
//	POST /query  - structured grid query (filter, quick-filter, sort)
//	GET  /       - listing with optional ?search= term
func (h *Handler) Register(g *echo.Group) {
	g.POST("/query", h.Query)
	g.GET("", h.List)
}

// Query handles a structured grid query request.
func (h *Handler) Query(c echo.Context) error {
	var req odata.GridRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	page := pagination.FromContext(c)
	result, err := h.service.Query(c.Request().Context(), req, page.Limit, page.Offset)
	if err != nil {
		return h.backendError(c, err)
	}

	return c.JSON(http.StatusOK, pagination.NewResponse(result.Rows, int(result.Total), page.Limit, page.Offset))
}

// List handles a plain listing request with an optional search term.
func (h *Handler) List(c echo.Context) error {
	page := pagination.FromContext(c)
	result, err := h.service.List(c.Request().Context(), c.QueryParam("search"), page.Limit, page.Offset)
	if err != nil {
		return h.backendError(c, err)
	}

	return c.JSON(http.StatusOK, pagination.NewResponse(result.Rows, int(result.Total), page.Limit, page.Offset))
}

// backendError maps backend failures onto gateway responses: a 4xx from the
// backend is the caller's fault, anything else is a bad gateway.
func (h *Handler) backendError(c echo.Context, err error) error {
	var se *backend.StatusError
	if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
		return echo.NewHTTPError(http.StatusBadRequest, "backend rejected query")
	}

	h.logger.Error().Err(err).Str("path", c.Path()).Msg("backend query failed")
	return echo.NewHTTPError(http.StatusBadGateway, "query backend unavailable")
}
