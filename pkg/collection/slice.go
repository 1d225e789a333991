package collection

// FilterArray removes elements from a copy of items. With a key, every element
// whose key field strictly equals value is dropped. Without a key, value is an
// index and the element at that position is dropped. A nil slice yields nil.
func FilterArray[T any](items []T, value any, key string) []T {
	if items == nil {
		return nil
	}
	if key != "" {
		return RemoveWhere(items, key, value)
	}

	result := make([]T, 0, len(items))
	for i, item := range items {
		if !StrictEqual(i, value) {
			result = append(result, item)
		}
	}
	return result
}

// RemoveAt returns a copy of items without the element at index.
// Out of range indexes leave the copy untouched.
func RemoveAt[T any](items []T, index int) []T {
	return FilterArray(items, index, "")
}

// RemoveWhere returns a copy of items without elements whose key field strictly
// equals value. A missing field only matches a nil value.
func RemoveWhere[T any](items []T, key string, value any) []T {
	if items == nil {
		return nil
	}
	result := make([]T, 0, len(items))
	for _, item := range items {
		v, _ := Field(item, key)
		if !StrictEqual(v, value) {
			result = append(result, item)
		}
	}
	return result
}

// ReplaceElement returns a copy of items where every element matching value
// (by key field, or by index when key is empty) is replaced with a shallow
// copy of newData. Other elements are carried over as is.
func ReplaceElement[T any](items []T, key string, value any, newData T) []T {
	if items == nil {
		return nil
	}
	result := make([]T, len(items))
	for i, item := range items {
		var current any = i
		if key != "" {
			current, _ = Field(item, key)
		}
		if StrictEqual(current, value) {
			result[i] = shallowCopy(newData)
			continue
		}
		result[i] = item
	}
	return result
}

// ConcatArrays returns a new slice holding a followed by b. Duplicates are kept.
func ConcatArrays[T any](a, b []T) []T {
	result := make([]T, 0, len(a)+len(b))
	result = append(result, a...)
	return append(result, b...)
}

// UniqueBy keeps the first element for each distinct key field value.
// Elements whose field value is not comparable are always kept.
func UniqueBy[T any](items []T, key string) []T {
	if items == nil {
		return nil
	}
	seen := make(map[any]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		v, _ := Field(item, key)
		k, ok := hashKey(v)
		if !ok {
			result = append(result, item)
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}
