package check

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var positiveNumberRegex = regexp.MustCompile(`^[0-9]+$`)

// IsUndefined reports whether v carries neither a type nor a value.
// A typed nil (for example a nil *User) is null, not undefined.
func IsUndefined(v any) bool {
	return v == nil
}

// IsNull reports whether v is a typed nil: a nil pointer, map, slice, func,
// channel or interface wrapped in a non-nil any.
func IsNull(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsEmpty reports whether v has no meaningful content.
//
// Undefined and null values, whitespace-only strings, and collections or
// structs without entries are empty. Numbers and booleans are never empty,
// so 0 and false are reported as non-empty.
func IsEmpty(v any) bool {
	if v == nil || IsNull(v) {
		return true
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Struct:
		return exportedFields(rv.Type()) == 0
	}
	return false
}

// IsEmptyString reports whether v is the empty string, undefined or null.
// Whitespace-only strings are not considered empty here; use IsEmpty for that.
func IsEmptyString(v any) bool {
	if v == nil || IsNull(v) {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// Truthy applies loose truthiness: undefined, null, false, numeric zero, NaN
// and "" are falsy. Every other value, including an empty non-nil slice or
// map, is truthy.
func Truthy(v any) bool {
	if v == nil || IsNull(v) {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// IsNumber reports whether v holds a Go integer or floating point value.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// PositiveNumberCheck accepts empty input or anything whose textual form is
// made of ASCII digits only. Signs, decimal points and exponents are rejected.
// Floats print in plain decimal below 1e21, so 1e6 passes and 1e21 does not.
func PositiveNumberCheck(v any) bool {
	if IsEmpty(v) {
		return true
	}
	return positiveNumberRegex.MatchString(numberText(v))
}

// numberText formats v the way a loose number-to-string conversion does:
// floats use plain decimal notation up to 1e21 and exponent form above it.
func numberText(v any) string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Float32 && rv.Kind() != reflect.Float64 {
		return fmt.Sprint(v)
	}

	bits := 64
	if rv.Kind() == reflect.Float32 {
		bits = 32
	}
	f := rv.Float()
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// ValidateObject reports whether every value of m is truthy.
// An empty map is valid.
func ValidateObject(m map[string]any) bool {
	for _, v := range m {
		if !Truthy(v) {
			return false
		}
	}
	return true
}

// EmptyObjectValues reports whether no value of m is truthy.
func EmptyObjectValues(m map[string]any) bool {
	for _, v := range m {
		if Truthy(v) {
			return false
		}
	}
	return true
}

func exportedFields(t reflect.Type) int {
	n := 0
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			n++
		}
	}
	return n
}
