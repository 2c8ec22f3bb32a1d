package views

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/evalhub/evalhub/internal/platform/auth"
	"github.com/evalhub/evalhub/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/views", h.List)
	api.GET("/views/:id", h.Get)
	api.POST("/views", h.Create)
	api.PUT("/views/:id", h.Update)
	api.DELETE("/views/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var v View
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v.OwnerID = auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Create(c.Request().Context(), &v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	caller := auth.UserIDFromContext(c.Request().Context())
	v, err := h.svc.Get(c.Request().Context(), id, caller)
	if err != nil {
		return viewError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	caller := auth.UserIDFromContext(c.Request().Context())
	items, total, err := h.svc.List(c.Request().Context(), caller, c.QueryParam("entity"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var v View
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v.ID = id
	caller := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Update(c.Request().Context(), &v, caller); err != nil {
		return viewError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	caller := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), id, caller); err != nil {
		return viewError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func viewError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "view not found")
	case errors.Is(err, ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "view belongs to another user")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
