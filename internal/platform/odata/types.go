package odata

// ---------------------------------------------------------------------------
// Grid filter model types
//
// These mirror the structured filter state a data grid produces: an ordered
// list of filter items plus a logic operator, with quick-filter (free-text
// search) terms carried either as pseudo-items or as a separate value list.
// All values are plain data; nothing in this package performs I/O.
// ---------------------------------------------------------------------------

// LogicOperator joins compiled filter conditions.
type LogicOperator string

const (
	LogicAnd LogicOperator = "and"
	LogicOr  LogicOperator = "or"
)

// Quick-filter pseudo-item field names recognised by the compilers.
const (
	QuickFilterField       = "__quickFilter__"
	QuickFilterFieldLegacy = "quickFilter"
)

// FilterItem is one user-specified filter row. Field is a logical name,
// possibly dot-separated ("behavior.name") to indicate a relationship
// traversal. Value may be a scalar, a slice (isAnyOf), or a boolean sentinel
// (isEmpty/isNotEmpty, where only the operator matters).
type FilterItem struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
	ID       interface{} `json:"id,omitempty"`
}

// FilterModel is the structured filter state of one grid.
// An omitted LogicOperator means "and".
type FilterModel struct {
	Items         []FilterItem  `json:"items"`
	LogicOperator LogicOperator `json:"logicOperator,omitempty"`
}

// SortItem is one entry of a grid's sort model.
type SortItem struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// GridRequest is the full query state a grid posts to a query endpoint:
// structured filters, free-text quick-filter terms, and the sort model.
type GridRequest struct {
	Filter      FilterModel `json:"filter"`
	QuickFilter []string    `json:"quickFilter,omitempty"`
	Sort        []SortItem  `json:"sort,omitempty"`
}

// EntityFilterConfig parameterises the compiler for one entity family:
// how logical field names map to navigation-property paths, which paths a
// quick-filter term is matched against, and whether quick-filter terms also
// match attached tags.
type EntityFilterConfig struct {
	// FieldMap remaps logical field names to navigation paths. Unmapped
	// fields fall through to the default dot-to-slash translation.
	FieldMap map[string]string

	// SearchFields are the navigation paths eligible for quick-filter
	// matching, in a fixed order.
	SearchFields []string

	// SearchTags appends a tag-relationship contains condition to each
	// quick-filter term group.
	SearchTags bool
}

// ---------------------------------------------------------------------------
// Entity family configurations
//
// These lists are fixed contracts with the upstream OData backend; they are
// not derived at runtime.
// ---------------------------------------------------------------------------

// genericConfig covers tests and any entity without family-specific remaps.
var genericConfig = EntityFilterConfig{
	SearchFields: []string{"prompt/content", "behavior/name", "topic/name", "category/name"},
	SearchTags:   true,
}

var taskConfig = EntityFilterConfig{
	FieldMap: map[string]string{
		"status":   "status/name",
		"assignee": "assignee/name",
		"priority": "priority/type_value",
		"user":     "user/name",
	},
	SearchFields: []string{"title", "description"},
}

var testRunConfig = EntityFilterConfig{
	SearchFields: []string{"name", "test_configuration/test_set/name", "user/name", "status/name"},
	SearchTags:   true,
}

var testSetConfig = EntityFilterConfig{
	FieldMap: map[string]string{
		"testSetType": "test_set_type/type_value",
		"creator":     "user/name",
	},
	SearchFields: []string{"name", "user/name", "test_set_type/type_value"},
	SearchTags:   true,
}

var sourceConfig = EntityFilterConfig{
	SearchFields: []string{"title", "description"},
	SearchTags:   true,
}
