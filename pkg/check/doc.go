// Package check classifies single values: empty, undefined, null, truthy,
// positive numeric strings and maps whose fields are all (or none) truthy.
//
// Values are passed as any. The package distinguishes two kinds of absence:
//
//   - undefined: the nil interface, a value that was never set.
//   - null: a typed nil such as a nil pointer, map or slice.
//
// Truthiness follows the usual loose rules: undefined, null, false, numeric
// zero, NaN and the empty string are falsy, everything else is truthy.
//
// # Usage
//
//	import "github.com/dmitrymomot/odash/pkg/check"
//
//	check.IsEmpty("   ")                  // true
//	check.IsEmpty(0)                      // false
//	check.PositiveNumberCheck("42")       // true
//	check.ValidateObject(map[string]any{  // false, "name" is falsy
//	    "name": "",
//	    "age":  30,
//	})
//
// All helpers are pure and safe for concurrent use.
package check
