package collection

import (
	"math"
	"reflect"

	"github.com/dmitrymomot/odash/pkg/check"
)

// RemoveEmptyFields returns a new map without falsy values, except that
// numeric zero is kept. "", nil, false and NaN are dropped.
func RemoveEmptyFields(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if check.Truthy(v) || (check.IsNumber(v) && toFloat(v) == 0) {
			result[k] = v
		}
	}
	return result
}

// hashKey normalises v into a map key matching StrictEqual semantics.
func hashKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	if check.IsNumber(v) {
		f := toFloat(v)
		return f, !math.IsNaN(f)
	}
	if !reflect.ValueOf(v).Comparable() {
		return nil, false
	}
	return v, true
}
