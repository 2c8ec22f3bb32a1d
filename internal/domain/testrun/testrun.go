// Package testrun wires the grid query endpoints for the test-runs collection.
package testrun

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/domain/grid"
	"github.com/evalhub/evalhub/internal/platform/odata"
)

// Collection is the backend collection name.
const Collection = "test-runs"

// NewService creates the grid query service for test runs.
func NewService(b grid.Backend, logger zerolog.Logger) *grid.Service {
	return grid.NewService(b, grid.Config{
		Collection:     Collection,
		CompileFilter:  odata.ConvertTestRunFilterModelToOData,
		CompileSort:    odata.ConvertTestRunSortModelToOData,
		WildcardFilter: odata.CreateTestRunWildcardSearchFilter,
	}, logger)
}

// RegisterRoutes mounts the test-runs endpoints under the given group.
func RegisterRoutes(g *echo.Group, b grid.Backend, logger zerolog.Logger) {
	grid.NewHandler(NewService(b, logger), logger).Register(g)
}
