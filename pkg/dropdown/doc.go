// Package dropdown turns key/label mappings into label/value options for
// select inputs.
//
// Go maps have no stable iteration order, so the package works on []Entry,
// an explicitly ordered mapping. FromMap converts a plain map by sorting its
// keys; callers that care about a specific order build the entries by hand.
//
//	entries := []dropdown.Entry{{Key: "a", Label: "Apple"}, {Key: "b", Label: "Banana"}}
//
//	dropdown.Options(entries)
//	// [{Label: "Apple", Value: "a"} {Label: "Banana", Value: "b"}]
//
//	opt, ok := dropdown.Find(entries, "b")
//	// {Label: "Banana", Value: "b"}, true
//
// SortByLabel orders options for display with locale-aware collation from
// golang.org/x/text.
package dropdown
