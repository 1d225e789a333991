package collection

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/odash/pkg/check"
)

// Field extracts item[key] from a map with string keys or a struct.
// Struct fields are matched by exported name first, then by json tag name.
// Pointers and interfaces are followed. The second result is false when the
// item has no such field, which callers treat as undefined.
func Field(item any, key string) (any, bool) {
	rv, ok := deref(reflect.ValueOf(item))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		return structField(rv, key)
	}
	return nil, false
}

func structField(rv reflect.Value, key string) (any, bool) {
	t := rv.Type()
	if sf, ok := t.FieldByName(key); ok && sf.IsExported() && len(sf.Index) == 1 {
		return rv.FieldByIndex(sf.Index).Interface(), true
	}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == key {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

// isObject mirrors the "typeof item === object" check: maps, structs, slices
// and arrays, possibly behind a pointer.
func isObject(item any) bool {
	rv, ok := deref(reflect.ValueOf(item))
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func deref(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

// StrictEqual compares two values without coercion. Numbers of any Go kind
// are compared by value, so int 2 equals float64 2 and NaN equals nothing.
// Other values must share a dynamic type and be comparable; slices, maps and
// funcs are never equal.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if check.IsNumber(a) && check.IsNumber(b) {
		return toFloat(a) == toFloat(b)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() || !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return ra.Equal(rb)
}

// shallowCopy copies the top level of maps, slices and struct pointers so the
// result does not alias v. Other values are already copied by assignment.
func shallowCopy[T any](v T) T {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return v
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		clone := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			clone.SetMapIndex(iter.Key(), iter.Value())
		}
		return clone.Interface().(T)
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		clone := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(clone, rv)
		return clone.Interface().(T)
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return v
		}
		clone := reflect.New(rv.Elem().Type())
		clone.Elem().Set(rv.Elem())
		return clone.Interface().(T)
	}
	return v
}
