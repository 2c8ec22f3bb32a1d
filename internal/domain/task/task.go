// Package task wires the grid query endpoints for the tasks collection.
package task

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/domain/grid"
	"github.com/evalhub/evalhub/internal/platform/odata"
)

// Collection is the backend collection name.
const Collection = "tasks"

// NewService creates the grid query service for tasks.
func NewService(b grid.Backend, logger zerolog.Logger) *grid.Service {
	return grid.NewService(b, grid.Config{
		Collection:     Collection,
		CompileFilter:  odata.ConvertTaskFilterModelToOData,
		CompileSort:    odata.ConvertTaskSortModelToOData,
		WildcardFilter: odata.CreateTaskWildcardSearchFilter,
	}, logger)
}

// RegisterRoutes mounts the tasks endpoints under the given group.
func RegisterRoutes(g *echo.Group, b grid.Backend, logger zerolog.Logger) {
	grid.NewHandler(NewService(b, logger), logger).Register(g)
}
