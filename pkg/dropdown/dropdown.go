package dropdown

import (
	"maps"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry is one key/label pair of an ordered mapping.
type Entry struct {
	Key   string
	Label string
}

// Option is a dropdown item as rendered by select inputs.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Options converts entries into dropdown options, keeping entry order.
// The label is the entry label, the value is the entry key.
func Options(entries []Entry) []Option {
	opts := make([]Option, len(entries))
	for i, e := range entries {
		opts[i] = Option{Label: e.Label, Value: e.Key}
	}
	return opts
}

// Find returns the first option whose value equals value.
// An empty value never matches.
func Find(entries []Entry, value string) (Option, bool) {
	if value == "" {
		return Option{}, false
	}
	for _, e := range entries {
		if e.Key == value {
			return Option{Label: e.Label, Value: e.Key}, true
		}
	}
	return Option{}, false
}

// FromMap builds entries from an unordered map, sorted by key so the result
// is deterministic.
func FromMap(m map[string]string) []Entry {
	entries := make([]Entry, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		entries = append(entries, Entry{Key: k, Label: m[k]})
	}
	return entries
}

// SortByLabel returns a copy of opts ordered by label using the collation
// rules of tag. Options with equal labels keep their relative order.
func SortByLabel(opts []Option, tag language.Tag) []Option {
	sorted := slices.Clone(opts)
	if sorted == nil {
		sorted = []Option{}
	}
	c := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(sorted, func(a, b Option) int {
		return c.CompareString(a.Label, b.Label)
	})
	return sorted
}
