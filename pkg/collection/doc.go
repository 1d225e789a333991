// Package collection provides helpers for summing, filtering, replacing and
// joining slices of loosely typed records, and for stripping empty fields from
// maps.
//
// Records are usually map[string]any values decoded from JSON or structs.
// Field lookups (the key arguments) work on both: maps are indexed by key,
// structs are matched by exported field name or json tag.
//
// Every helper returns freshly allocated results and never mutates its input.
//
// # Usage
//
//	import "github.com/dmitrymomot/odash/pkg/collection"
//
//	rows := []map[string]any{{"id": 1, "qty": 2}, {"id": 2, "qty": "x"}}
//
//	collection.SumBy(rows, collection.Key[map[string]any]("qty")) // 2, "x" is skipped
//	collection.FilterArray(rows, 2, "id")                          // drops the id=2 row
//	collection.FilterArray([]int{10, 20, 30}, 1, "")              // [10 30]
//
//	collection.ConcatStrings([]any{"a", 1, "b"}, collection.WithSeparator("-")) // "a-b"
//
// # Equality and numbers
//
// Matching uses StrictEqual: no string/number coercion, but numbers of
// different Go kinds compare by value so JSON float64 ids match int literals.
// SumOfArray coerces with ToNumber and lets NaN propagate, so a single
// unparsable value turns the whole sum into NaN.
package collection
