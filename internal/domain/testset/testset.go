// Package testset wires the grid query endpoints for the test-sets collection.
package testset

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/domain/grid"
	"github.com/evalhub/evalhub/internal/platform/odata"
)

// Collection is the backend collection name.
const Collection = "test-sets"

// NewService creates the grid query service for test sets.
func NewService(b grid.Backend, logger zerolog.Logger) *grid.Service {
	return grid.NewService(b, grid.Config{
		Collection:     Collection,
		CompileFilter:  odata.ConvertTestSetFilterModelToOData,
		CompileSort:    odata.ConvertTestSetSortModelToOData,
		WildcardFilter: odata.CreateTestSetWildcardSearchFilter,
	}, logger)
}

// RegisterRoutes mounts the test-sets endpoints under the given group.
func RegisterRoutes(g *echo.Group, b grid.Backend, logger zerolog.Logger) {
	grid.NewHandler(NewService(b, logger), logger).Register(g)
}
