package engine

import (
	"reflect"
	"strings"
)

// maxSearchDepth bounds the recursive walk. Parsed JSON has no cycles
// but no bounded depth either; anything nested deeper than this is not
// searched rather than risking a stack overflow on pathological input.
const maxSearchDepth = 64

// Matches reports whether term occurs, case-insensitively, in any
// string reachable inside value. Strings match by substring
// containment; slices and arrays match if any element matches; maps and
// structs match if any value (exported field) matches, short-circuiting
// on the first hit. Numbers, booleans, and nil never match.
//
// An empty term matches everything: a zero-length substring is
// contained in every string, and the filter layer additionally treats
// an empty term as "no predicate", so the two policies agree.
func Matches(value any, term string) bool {
	if term == "" {
		return true
	}
	return matchValue(reflect.ValueOf(value), strings.ToLower(term), 0)
}

func matchValue(v reflect.Value, lowerTerm string, depth int) bool {
	if depth > maxSearchDepth || !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.String:
		return strings.Contains(strings.ToLower(v.String()), lowerTerm)

	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return matchValue(v.Elem(), lowerTerm, depth)

	case reflect.Slice, reflect.Array:
		// Byte slices (json.RawMessage) are text, not element sequences.
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return strings.Contains(strings.ToLower(string(v.Bytes())), lowerTerm)
		}
		for i := 0; i < v.Len(); i++ {
			if matchValue(v.Index(i), lowerTerm, depth+1) {
				return true
			}
		}
		return false

	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if matchValue(iter.Value(), lowerTerm, depth+1) {
				return true
			}
		}
		return false

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if matchValue(v.Field(i), lowerTerm, depth+1) {
				return true
			}
		}
		return false

	default:
		// Numbers, booleans, channels, funcs: never match.
		return false
	}
}
