package odata

import (
	"fmt"
	"strings"
)

// tagsRelationship is the navigation property of the many-to-many tag join
// collection. Tags never compile to a direct field comparison; every operator
// becomes a quantified any() expression over this path.
const tagsRelationship = "_tags_relationship"

// tagName is the path from the join-collection lambda variable to the tag's
// display name.
const tagName = "t/tag/name"

// ---------------------------------------------------------------------------
// Field resolution
// ---------------------------------------------------------------------------

// resolveField maps a UI-facing logical field name to the backend's
// navigation-property path. Family-specific remaps win; everything else gets
// the default dot-to-slash translation ("behavior.name" -> "behavior/name").
func (c EntityFilterConfig) resolveField(field string) string {
	if mapped, ok := c.FieldMap[field]; ok {
		return mapped
	}
	return strings.ReplaceAll(field, ".", "/")
}

// ---------------------------------------------------------------------------
// Condition builder
// ---------------------------------------------------------------------------

// BuildCondition compiles one filter item into a self-contained OData boolean
// expression. Inert items (missing field, operator, or value) compile to the
// empty string and are never emitted as malformed fragments. Unknown
// operators degrade to contains semantics; this function never fails.
func (c EntityFilterConfig) BuildCondition(item FilterItem) string {
	if item.Field == "" || item.Operator == "" || item.Value == nil || item.Value == "" {
		return ""
	}

	if item.Field == "tags" {
		return tagCondition(item.Operator, item.Value)
	}

	field := c.resolveField(item.Field)

	switch item.Operator {
	case "contains":
		return containsCondition(field, item.Value)
	case "startsWith":
		return fmt.Sprintf("startswith(tolower(%s), tolower('%s'))", field, EscapeString(item.Value))
	case "endsWith":
		return fmt.Sprintf("endswith(tolower(%s), tolower('%s'))", field, EscapeString(item.Value))
	case "equals", "=", "is":
		return equalityCondition(field, "eq", item.Value)
	case "not", "!=":
		return equalityCondition(field, "ne", item.Value)
	case "greaterThan", ">":
		return fmt.Sprintf("%s gt %s", field, literal(item.Value))
	case ">=":
		return fmt.Sprintf("%s ge %s", field, literal(item.Value))
	case "lessThan", "<":
		return fmt.Sprintf("%s lt %s", field, literal(item.Value))
	case "<=":
		return fmt.Sprintf("%s le %s", field, literal(item.Value))
	case "isEmpty":
		// The value is a presence sentinel, never a comparand.
		return fmt.Sprintf("%s eq null or %s eq ''", field, field)
	case "isNotEmpty":
		return fmt.Sprintf("%s ne null and %s ne ''", field, field)
	case "isAnyOf":
		return anyOfCondition(field, item.Value)
	default:
		return containsCondition(field, item.Value)
	}
}

func containsCondition(field string, value interface{}) string {
	return fmt.Sprintf("contains(tolower(%s), tolower('%s'))", field, EscapeString(value))
}

// equalityCondition emits eq/ne; string comparands are matched
// case-insensitively, everything else compares literally.
func equalityCondition(field, op string, value interface{}) string {
	if _, ok := value.(string); ok {
		return fmt.Sprintf("tolower(%s) %s tolower('%s')", field, op, EscapeString(value))
	}
	return fmt.Sprintf("%s %s %s", field, op, literal(value))
}

// anyOfCondition emits a parenthesized OR group of per-element equality
// checks. An empty list compiles to the empty string.
func anyOfCondition(field string, value interface{}) string {
	values := sliceValues(value)
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%s eq %s", field, quoted(v))
	}
	return "(" + strings.Join(parts, " or ") + ")"
}

// ---------------------------------------------------------------------------
// Tags: many-to-many relation through a join collection
// ---------------------------------------------------------------------------

// tagCondition compiles a filter on the logical "tags" field. Existence
// checks quantify over the bare relationship; everything else applies the
// operator to the tag name inside an any() lambda.
func tagCondition(op string, value interface{}) string {
	switch op {
	case "isEmpty":
		return "not " + tagsRelationship + "/any()"
	case "isNotEmpty":
		return tagsRelationship + "/any()"
	case "equals", "=", "is":
		return tagAny(fmt.Sprintf("tolower(%s) eq tolower('%s')", tagName, EscapeString(value)))
	case "not", "!=":
		return tagAny(fmt.Sprintf("tolower(%s) ne tolower('%s')", tagName, EscapeString(value)))
	case "startsWith":
		return tagAny(fmt.Sprintf("startswith(tolower(%s), tolower('%s'))", tagName, EscapeString(value)))
	case "endsWith":
		return tagAny(fmt.Sprintf("endswith(tolower(%s), tolower('%s'))", tagName, EscapeString(value)))
	case "isAnyOf":
		values := sliceValues(value)
		if len(values) == 0 {
			return ""
		}
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = tagAny(fmt.Sprintf("tolower(%s) eq tolower('%s')", tagName, EscapeString(v)))
		}
		return "(" + strings.Join(parts, " or ") + ")"
	default:
		return tagContains(value)
	}
}

// tagContains is the quick-filter form: does any attached tag, lower-cased,
// contain the lower-cased term.
func tagContains(value interface{}) string {
	return tagAny(fmt.Sprintf("contains(tolower(%s), tolower('%s'))", tagName, EscapeString(value)))
}

func tagAny(predicate string) string {
	return fmt.Sprintf("%s/any(t: %s)", tagsRelationship, predicate)
}

// sliceValues normalises an isAnyOf comparand into a value list.
func sliceValues(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}
