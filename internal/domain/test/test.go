// Package test wires the grid query endpoints for the tests collection.
package test

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/domain/grid"
	"github.com/evalhub/evalhub/internal/platform/odata"
)

// Collection is the backend collection name.
const Collection = "tests"

// NewService creates the grid query service for tests.
func NewService(b grid.Backend, logger zerolog.Logger) *grid.Service {
	return grid.NewService(b, grid.Config{
		Collection:     Collection,
		CompileFilter:  odata.ConvertGridFilterModelToOData,
		CompileSort:    odata.ConvertGridSortModelToOData,
		WildcardFilter: odata.CreateTestWildcardSearchFilter,
	}, logger)
}

// RegisterRoutes mounts the tests endpoints under the given group.
func RegisterRoutes(g *echo.Group, b grid.Backend, logger zerolog.Logger) {
	grid.NewHandler(NewService(b, logger), logger).Register(g)
}
