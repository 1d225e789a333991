package collection

import "github.com/dmitrymomot/odash/pkg/check"

// Iteratee selects the value summed for each element: either a field name or
// an extraction function. Build one with Key or Func.
type Iteratee[T any] struct {
	key string
	fn  func(T) any
}

// Key selects element[name].
func Key[T any](name string) Iteratee[T] {
	return Iteratee[T]{key: name}
}

// Func selects the result of fn.
func Func[T any](fn func(T) any) Iteratee[T] {
	return Iteratee[T]{fn: fn}
}

func (it Iteratee[T]) extract(item T) any {
	if it.fn != nil {
		return it.fn(item)
	}
	v, _ := Field(item, it.key)
	return v
}

// SumBy adds up the numeric values selected by it. Non-numeric selections are
// skipped, and an empty collection sums to 0.
func SumBy[T any](items []T, it Iteratee[T]) float64 {
	var sum float64
	for _, item := range items {
		if v := it.extract(item); check.IsNumber(v) {
			sum += toFloat(v)
		}
	}
	return sum
}

// SumOfArray sums ToNumber(element[key]) over items. Values that do not coerce
// produce NaN and poison the total, so callers should validate input first.
func SumOfArray[T any](items []T, key string) float64 {
	return SumBy(items, Func(func(item T) any {
		v, _ := Field(item, key)
		return ToNumber(v)
	}))
}
