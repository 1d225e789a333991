package collection

import (
	"reflect"
	"strings"
)

// ConcatOption configures ConcatStrings.
type ConcatOption func(*concatOptions)

type concatOptions struct {
	separator string
	key       string
}

// WithSeparator sets the string placed between joined items. Defaults to " ".
func WithSeparator(sep string) ConcatOption {
	return func(o *concatOptions) { o.separator = sep }
}

// WithKey extracts item[key] from map and struct items before joining.
func WithKey(key string) ConcatOption {
	return func(o *concatOptions) { o.key = key }
}

// ConcatStrings joins the string items of a mixed slice. Items that are not
// strings (or, with WithKey, whose field is not a string) are skipped.
//
//	ConcatStrings([]any{"a", 1, "b"})                            // "a b"
//	ConcatStrings([]any{user, "x"}, WithKey("name"), WithSeparator(", "))
func ConcatStrings(items []any, opts ...ConcatOption) string {
	o := concatOptions{separator: " "}
	for _, opt := range opts {
		opt(&o)
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if o.key != "" && isObject(item) {
			item, _ = Field(item, o.key)
		}
		if s, ok := asString(item); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, o.separator)
}

func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
