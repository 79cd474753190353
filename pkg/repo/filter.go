package repo

import (
	"reflect"

	"github.com/localstore/docdb/pkg/domain"
)

// MatchesFilter checks if a document matches the given filter criteria.
// Conditions are exact-match on top-level fields and implicitly ANDed.
func MatchesFilter(doc domain.Document, filter map[string]interface{}) bool {
	for field, expectedValue := range filter {
		actualValue, exists := doc[field]
		if !exists {
			return false // Field doesn't exist in document
		}
		if !ValuesMatch(actualValue, expectedValue) {
			return false // Values don't match
		}
	}
	return true // All filter criteria match
}

// ValuesMatch compares two values for strict equality. Numeric values are
// compared by magnitude regardless of Go type, since JSON decoding yields
// float64 while callers often pass int.
func ValuesMatch(actual, expected interface{}) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}

	if actualStr, ok1 := actual.(string); ok1 {
		if expectedStr, ok2 := expected.(string); ok2 {
			return actualStr == expectedStr
		}
		return false
	}

	if actualNum, ok1 := ToFloat64(actual); ok1 {
		if expectedNum, ok2 := ToFloat64(expected); ok2 {
			return actualNum == expectedNum
		}
		return false
	}

	return reflect.DeepEqual(actual, expected)
}

// ToFloat64 converts various numeric types to float64 for comparison
func ToFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
