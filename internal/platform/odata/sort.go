package odata

import "strings"

// ---------------------------------------------------------------------------
// Sort-model compilation
//
// Grids carry sort state alongside filter state; it compiles to an OData
// $orderby expression using the same per-family field resolution as the
// filter compiler. Items without a field are dropped; an empty model
// compiles to "".
// ---------------------------------------------------------------------------

// CompileSortModel translates a grid sort model into an OData $orderby
// expression for the given entity family configuration.
func CompileSortModel(items []SortItem, config EntityFilterConfig) string {
	var parts []string
	for _, item := range items {
		if item.Field == "" {
			continue
		}
		field := config.resolveField(item.Field)
		if item.Desc {
			parts = append(parts, field+" desc")
		} else {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, ",")
}

// ConvertGridSortModelToOData compiles sort state for the test grid and any
// entity family without field remaps.
func ConvertGridSortModelToOData(items []SortItem) string {
	return CompileSortModel(items, genericConfig)
}

// ConvertTaskSortModelToOData compiles task grid sort state.
func ConvertTaskSortModelToOData(items []SortItem) string {
	return CompileSortModel(items, taskConfig)
}

// ConvertTestRunSortModelToOData compiles test-run grid sort state.
func ConvertTestRunSortModelToOData(items []SortItem) string {
	return CompileSortModel(items, testRunConfig)
}

// ConvertTestSetSortModelToOData compiles test-set grid sort state.
func ConvertTestSetSortModelToOData(items []SortItem) string {
	return CompileSortModel(items, testSetConfig)
}

// ConvertSourceSortModelToOData compiles source grid sort state.
func ConvertSourceSortModelToOData(items []SortItem) string {
	return CompileSortModel(items, sourceConfig)
}
