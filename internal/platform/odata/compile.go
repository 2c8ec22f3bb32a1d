package odata

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Filter-model compilation
// ---------------------------------------------------------------------------

// CompileFilterModel is the generic compiler: it partitions quick-filter
// pseudo-items from regular items, compiles both, and joins the surviving
// conditions with the model's logic operator (default and). The result is ""
// for an empty or fully-inert model; a single condition is returned
// unwrapped, and two or more are joined inside one parenthesis pair. It
// never fails: malformed items are dropped, never emitted.
func CompileFilterModel(model FilterModel, config EntityFilterConfig) string {
	if len(model.Items) == 0 {
		return ""
	}

	var quick []string
	var clauses []string
	for _, item := range model.Items {
		if item.Field == QuickFilterField || item.Field == QuickFilterFieldLegacy {
			quick = append(quick, quickTerms(item.Value)...)
			continue
		}
		if cond := config.BuildCondition(item); cond != "" {
			clauses = append(clauses, cond)
		}
	}
	if qf := config.expand(quick); qf != "" {
		clauses = append(clauses, qf)
	}

	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	default:
		joiner := " and "
		if model.LogicOperator == LogicOr {
			joiner = " or "
		}
		return "(" + strings.Join(clauses, joiner) + ")"
	}
}

// quickTerms extracts free-text terms from a quick-filter pseudo-item value,
// which grids send either as a term list or a single term.
func quickTerms(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []interface{}:
		terms := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				terms = append(terms, s)
			} else {
				terms = append(terms, fmt.Sprint(t))
			}
		}
		return terms
	default:
		return []string{fmt.Sprint(v)}
	}
}

// ---------------------------------------------------------------------------
// Entity-family entry points
// ---------------------------------------------------------------------------

// ConvertGridFilterModelToOData compiles a filter model for the test grid and
// any entity family without field remaps.
func ConvertGridFilterModelToOData(model FilterModel) string {
	return CompileFilterModel(model, genericConfig)
}

// ConvertTaskFilterModelToOData compiles a task grid filter model, remapping
// status, assignee, priority, and user onto their relationship paths.
func ConvertTaskFilterModelToOData(model FilterModel) string {
	return CompileFilterModel(model, taskConfig)
}

// ConvertTestRunFilterModelToOData compiles a test-run grid filter model.
func ConvertTestRunFilterModelToOData(model FilterModel) string {
	return CompileFilterModel(model, testRunConfig)
}

// ConvertTestSetFilterModelToOData compiles a test-set grid filter model,
// remapping testSetType and creator onto their relationship paths.
func ConvertTestSetFilterModelToOData(model FilterModel) string {
	return CompileFilterModel(model, testSetConfig)
}

// ConvertSourceFilterModelToOData compiles a source grid filter model.
func ConvertSourceFilterModelToOData(model FilterModel) string {
	return CompileFilterModel(model, sourceConfig)
}

// CombineFiltersToOData compiles a filter model and an ad-hoc quick-filter
// value list against an explicit search-field list, then AND-combines the two
// results. Each side is parenthesized only when both are non-empty.
func CombineFiltersToOData(model FilterModel, quickValues []string, searchFields []string) string {
	filterPart := CompileFilterModel(model, genericConfig)
	quickPart := ExpandQuickFilter(quickValues, searchFields, false)

	switch {
	case filterPart == "":
		return quickPart
	case quickPart == "":
		return filterPart
	default:
		return "(" + filterPart + ") and (" + quickPart + ")"
	}
}
