package collections

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOptions configures [List.Sorted] and [Set.Sorted] (promoted
// from the shared traversal protocol). The zero value sorts the items
// themselves in ascending ordinal order.
type SortOptions[T any] struct {
	// By is a dot-separated path extracting the sort value from
	// map[string]any items. Items of any other type, or items missing
	// a path level, count as missing and are routed to the tail.
	By string

	// ByFunc extracts the sort value from each item. Takes precedence
	// over By when both are set.
	ByFunc func(T) any

	// LocaleCompare switches string comparison from ordinal byte
	// order to locale-aware collation.
	LocaleCompare bool

	// Tag selects the collation language used with LocaleCompare.
	// The zero value collates as language.Und.
	Tag language.Tag

	// IgnoreCase folds case before comparing string sort values.
	IgnoreCase bool

	// Reverse reverses the comparable items. Missing values keep
	// trailing in their original relative order regardless.
	Reverse bool
}

// Sorted returns a new container of the receiver's kind with the
// items stably sorted:
//
//  1. a sort value is extracted from each item (ByFunc, then By, then
//     the item itself);
//  2. items whose sort value is nil, unresolvable, or the empty
//     string are set aside as missing;
//  3. the remaining items are sorted stably — ordinal comparison, or
//     locale collation under LocaleCompare, uppercased first under
//     IgnoreCase — and reversed when Reverse is set;
//  4. the missing items are appended at the tail in their original
//     relative order.
//
// Missing-value placement deliberately survives Reverse: callers
// sorting ragged data always find the holes at the end.
func (b base[T, C]) Sorted(opts SortOptions[T]) C {
	items := b.view()
	type row struct {
		item T
		val  any
	}
	rows := make([]row, 0, len(items))
	missing := make([]T, 0)
	for _, item := range items {
		v, ok := opts.sortValue(item)
		if !ok {
			missing = append(missing, item)
			continue
		}
		rows = append(rows, row{item: item, val: v})
	}

	compare := opts.comparator()
	sort.SliceStable(rows, func(i, j int) bool {
		return compare(rows[i].val, rows[j].val) < 0
	})

	out := make([]T, 0, len(items))
	if opts.Reverse {
		for i := len(rows) - 1; i >= 0; i-- {
			out = append(out, rows[i].item)
		}
	} else {
		for _, r := range rows {
			out = append(out, r.item)
		}
	}
	out = append(out, missing...)
	return b.from(out)
}

// sortValue extracts the sort value for item, reporting false when
// the value counts as missing.
func (o SortOptions[T]) sortValue(item T) (any, bool) {
	var v any
	switch {
	case o.ByFunc != nil:
		v = o.ByFunc(item)
	case o.By != "":
		v, _ = extractPath(item, o.By)
	default:
		v = item
	}
	if v == nil {
		return nil, false
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, false
	}
	return v, true
}

// comparator builds the sort-value comparison for these options.
func (o SortOptions[T]) comparator() func(a, b any) int {
	var col *collate.Collator
	if o.LocaleCompare {
		var copts []collate.Option
		if o.IgnoreCase {
			copts = append(copts, collate.IgnoreCase)
		}
		col = collate.New(o.Tag, copts...)
	}
	return func(a, b any) int {
		as, aok := a.(string)
		bs, bok := b.(string)
		if aok && bok {
			if col != nil {
				return col.CompareString(as, bs)
			}
			if o.IgnoreCase {
				as, bs = strings.ToUpper(as), strings.ToUpper(bs)
			}
			return strings.Compare(as, bs)
		}
		return compareOrdinal(a, b)
	}
}

// compareOrdinal compares two values of arbitrary type: numerically
// when both are numeric, byte-wise when both are strings, and by %v
// rendering otherwise.
func compareOrdinal(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return cmp.Compare(af, bf)
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
