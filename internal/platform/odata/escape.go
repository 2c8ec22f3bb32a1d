package odata

import (
	"fmt"
	"strconv"
	"strings"
)

// EscapeString neutralises a value for embedding into an OData string
// literal. String input has every single quote doubled ('' is the grammar's
// escape for ' inside a quoted literal); no other character is altered.
// Non-string input is rendered in its natural literal form, unquoted, for
// numeric and boolean comparisons.
func EscapeString(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return literal(value)
	}
	return strings.ReplaceAll(s, "'", "''")
}

// literal renders a non-string value as an OData literal.
func literal(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		// JSON numbers decode as float64; integral values print without
		// a fractional part.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// quoted renders a value as the literal that follows an OData comparison:
// strings are escaped and single-quoted, everything else prints bare.
func quoted(value interface{}) string {
	if s, ok := value.(string); ok {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}
	return literal(value)
}
