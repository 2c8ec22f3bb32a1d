package odata

import (
	"strings"
)

// ---------------------------------------------------------------------------
// Quick-filter expansion
//
// A quick filter is the grid toolbar's free-text search: a list of terms that
// must all match (AND across terms), where each term may match on any of the
// family's configured search fields (OR across fields). The asymmetry is
// deliberate and load-bearing; do not "simplify" it.
// ---------------------------------------------------------------------------

// ExpandQuickFilter compiles free-text search terms against a fixed field
// list. Empty terms are dropped. Zero surviving terms compile to "", a single
// term to its unwrapped OR group, and multiple terms to an AND join wrapped
// in one outer parenthesis pair.
func ExpandQuickFilter(values []string, searchFields []string, searchTags bool) string {
	var groups []string
	for _, value := range values {
		if value == "" {
			continue
		}
		conditions := make([]string, 0, len(searchFields)+1)
		for _, field := range searchFields {
			conditions = append(conditions, containsCondition(field, value))
		}
		if searchTags {
			conditions = append(conditions, tagContains(value))
		}
		if len(conditions) == 0 {
			continue
		}
		group := strings.Join(conditions, " or ")
		if len(conditions) > 1 {
			group = "(" + group + ")"
		}
		groups = append(groups, group)
	}

	switch len(groups) {
	case 0:
		return ""
	case 1:
		return groups[0]
	default:
		return "(" + strings.Join(groups, " and ") + ")"
	}
}

// expand runs the quick filter with the family's own search configuration.
func (c EntityFilterConfig) expand(values []string) string {
	return ExpandQuickFilter(values, c.SearchFields, c.SearchTags)
}

// ---------------------------------------------------------------------------
// Wildcard ("search all fields") builders, one per entity family
// ---------------------------------------------------------------------------

// CreateTestWildcardSearchFilter matches a term against the test grid's
// searchable fields (prompt content, behavior, topic, category) and tags.
func CreateTestWildcardSearchFilter(search string) string {
	return genericConfig.expand([]string{search})
}

// CreateTaskWildcardSearchFilter matches a term against task title and
// description.
func CreateTaskWildcardSearchFilter(search string) string {
	return taskConfig.expand([]string{search})
}

// CreateTestRunWildcardSearchFilter matches a term against a run's name, its
// configuration's test set name, the executing user, status, and tags.
func CreateTestRunWildcardSearchFilter(search string) string {
	return testRunConfig.expand([]string{search})
}

// CreateTestSetWildcardSearchFilter matches a term against a test set's name,
// creator, type, and tags.
func CreateTestSetWildcardSearchFilter(search string) string {
	return testSetConfig.expand([]string{search})
}

// CreateSourceWildcardSearchFilter matches a term against a source's title,
// description, and tags.
func CreateSourceWildcardSearchFilter(search string) string {
	return sourceConfig.expand([]string{search})
}
