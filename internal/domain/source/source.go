// Package source wires the grid query endpoints for the sources collection.
package source

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/domain/grid"
	"github.com/evalhub/evalhub/internal/platform/odata"
)

// Collection is the backend collection name.
const Collection = "sources"

// NewService creates the grid query service for sources.
func NewService(b grid.Backend, logger zerolog.Logger) *grid.Service {
	return grid.NewService(b, grid.Config{
		Collection:     Collection,
		CompileFilter:  odata.ConvertSourceFilterModelToOData,
		CompileSort:    odata.ConvertSourceSortModelToOData,
		WildcardFilter: odata.CreateSourceWildcardSearchFilter,
	}, logger)
}

// RegisterRoutes mounts the sources endpoints under the given group.
func RegisterRoutes(g *echo.Group, b grid.Backend, logger zerolog.Logger) {
	grid.NewHandler(NewService(b, logger), logger).Register(g)
}
