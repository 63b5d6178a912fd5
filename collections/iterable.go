package collections

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-keyed-collections/dotpath"
)

// Iterable is the read-only surface shared by [List] and [Set].
//
// Accept Iterable in your own functions so callers can pass either
// container kind. The package-level type-transforming functions
// ([Map], [FlatMap], [Fold], …) are all defined against it.
type Iterable[T any] interface {
	// Size returns the number of items.
	Size() int

	// IsEmpty reports whether the container holds no items.
	IsEmpty() bool

	// ItemAt returns the item at position i, or the zero value and
	// false when i is out of range.
	ItemAt(i int) (T, bool)

	// First returns the first item, or the zero value and false when
	// the container is empty.
	First() (T, bool)

	// Last returns the last item, or the zero value and false when
	// the container is empty.
	Last() (T, bool)

	// Each calls fn once per item in positional order.
	Each(fn func(T))

	// ToList materializes an independent List snapshot of the items.
	ToList() *List[T]

	// ToSlice materializes an independent slice snapshot of the items.
	ToSlice() []T
}

var (
	_ Iterable[int] = (*List[int])(nil)
	_ Iterable[int] = (*Set[int])(nil)
)

// Omit is the sentinel a Map callback returns to drop the item from
// the result, letting one pass express filter+map. It is compared by
// identity, so it can never collide with a legitimate mapped value.
var Omit any = &omitMarker{}

type omitMarker struct{ _ byte }

// base implements the traversal protocol once. Concrete containers
// embed it and supply two hooks at construction time: view returns
// the container's current items (not a copy), and from builds a new
// container of the same concrete kind out of a raw item slice.
type base[T any, C any] struct {
	view func() []T
	from func([]T) C
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the number of items.
func (b base[T, C]) Size() int { return len(b.view()) }

// IsEmpty reports whether the container holds no items.
func (b base[T, C]) IsEmpty() bool { return len(b.view()) == 0 }

// ItemAt returns the item at position i.
// Returns the zero value and false when i is out of range.
func (b base[T, C]) ItemAt(i int) (T, bool) {
	items := b.view()
	var zero T
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

// First returns the first item, or the zero value and false when the
// container is empty.
func (b base[T, C]) First() (T, bool) { return b.ItemAt(0) }

// Last returns the last item, or the zero value and false when the
// container is empty.
func (b base[T, C]) Last() (T, bool) { return b.ItemAt(len(b.view()) - 1) }

// Each calls fn once per item in positional order.
func (b base[T, C]) Each(fn func(T)) {
	for _, item := range b.view() {
		fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map builds a new container of the receiver's kind from fn applied
// to every item. fn must return either a value of the item type or
// the [Omit] sentinel, which drops that item from the result:
//
//	l.Map(func(n int) any {
//	    if n%2 == 0 {
//	        return collections.Omit
//	    }
//	    return n * 10
//	})
//
// For transforms that change the element type, use the package-level
// [Map] function.
func (b base[T, C]) Map(fn func(T) any) C {
	items := b.view()
	out := make([]T, 0, len(items))
	for _, item := range items {
		v := fn(item)
		if v == Omit {
			continue
		}
		out = append(out, v.(T))
	}
	return b.from(out)
}

// Pluck extracts the value at the dot-separated path from every item
// and returns the extracted values as a List. Paths resolve through
// map[string]any items; a missing level, or an item of any other
// type, yields nil for that position.
func (b base[T, C]) Pluck(path string) *List[any] {
	items := b.view()
	out := make([]any, len(items))
	for i, item := range items {
		out[i], _ = extractPath(item, path)
	}
	return ListFrom(out)
}

// Filter returns a new container with only the items for which pred
// returns true.
func (b base[T, C]) Filter(pred func(T) bool) C {
	items := b.view()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return b.from(out)
}

// Count returns the number of items for which pred returns true.
func (b base[T, C]) Count(pred func(T) bool) int {
	n := 0
	for _, item := range b.view() {
		if pred(item) {
			n++
		}
	}
	return n
}

// Find returns the first item for which pred returns true, or the
// zero value and false when no item matches.
func (b base[T, C]) Find(pred func(T) bool) (T, bool) {
	for _, item := range b.view() {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindBy returns the first item whose value at the dot-separated path
// equals want, or the zero value and false when no item matches.
// Items that do not resolve the path never match.
func (b base[T, C]) FindBy(path string, want any) (T, bool) {
	return b.Find(func(item T) bool {
		v, ok := extractPath(item, path)
		return ok && v == want
	})
}

// Some reports whether at least one item satisfies pred.
func (b base[T, C]) Some(pred func(T) bool) bool {
	_, ok := b.Find(pred)
	return ok
}

// Every reports whether all items satisfy pred.
// Returns true for an empty container.
func (b base[T, C]) Every(pred func(T) bool) bool {
	return !b.Some(func(item T) bool { return !pred(item) })
}

// Fold accumulates the items left to right: op receives each item and
// the accumulator so far, and returns the new accumulator.
//
// For accumulators of a different type than the items, use the
// package-level [Fold] function.
func (b base[T, C]) Fold(initial T, op func(item, acc T) T) T {
	acc := initial
	for _, item := range b.view() {
		acc = op(item, acc)
	}
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & partitioning
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits the items into two new containers: first the items
// for which pred returns true, then the rest. Both preserve relative
// order.
func (b base[T, C]) Partition(pred func(T) bool) (C, C) {
	items := b.view()
	pass := make([]T, 0, len(items))
	fail := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return b.from(pass), b.from(fail)
}

// Grouped splits the items into consecutive chunks of at most size
// items each; the last chunk may be shorter. Returns no chunks when
// size <= 0.
func (b base[T, C]) Grouped(size int) []C {
	items := b.view()
	if size <= 0 {
		return []C{}
	}
	out := make([]C, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		out = append(out, b.from(items[i:min(i+size, len(items))]))
	}
	return out
}

// GroupBy groups the items by the discriminator value returned by
// disc, preserving item order inside each group and first-encounter
// order across groups. Group lists are created lazily on the first
// item of each new key.
//
// For groups keyed by a comparable type in a native Go map, use the
// package-level [GroupBy] function.
func (b base[T, C]) GroupBy(disc func(T) any) *KeyedMap[any, *List[T]] {
	groups := NewKeyedMap[any, *List[T]](nil)
	for _, item := range b.view() {
		k := disc(item)
		g, ok := groups.Get(k)
		if !ok {
			g = NewList[T]()
			groups.Put(k, g)
		}
		g.Add(item)
	}
	return groups
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Drop returns a new container without the first n items.
// n is clamped to [0, Size()].
func (b base[T, C]) Drop(n int) C {
	items := b.view()
	return b.from(items[clamp(n, len(items)):])
}

// DropRight returns a new container without the last n items.
// n is clamped to [0, Size()].
func (b base[T, C]) DropRight(n int) C {
	items := b.view()
	return b.from(items[:len(items)-clamp(n, len(items))])
}

// Take returns a new container with at most the first n items.
// n is clamped to [0, Size()].
func (b base[T, C]) Take(n int) C {
	items := b.view()
	return b.from(items[:clamp(n, len(items))])
}

// TakeRight returns a new container with at most the last n items.
// n is clamped to [0, Size()].
func (b base[T, C]) TakeRight(n int) C {
	items := b.view()
	return b.from(items[len(items)-clamp(n, len(items)):])
}

// DropWhile drops items from the start while pred returns true and
// returns the rest, stopping at the first non-matching item.
func (b base[T, C]) DropWhile(pred func(T) bool) C {
	items := b.view()
	for i, item := range items {
		if !pred(item) {
			return b.from(items[i:])
		}
	}
	return b.from(nil)
}

// TakeWhile returns items from the start while pred returns true,
// stopping at the first non-matching item.
func (b base[T, C]) TakeWhile(pred func(T) bool) C {
	items := b.view()
	for i, item := range items {
		if !pred(item) {
			return b.from(items[:i])
		}
	}
	return b.from(items)
}

// Slice returns the items in [start, end). Negative bounds count from
// the end; both bounds are clamped to the container, so out-of-range
// values never error.
func (b base[T, C]) Slice(start, end int) C {
	items := b.view()
	if start < 0 {
		start = len(items) + start
	}
	if end < 0 {
		end = len(items) + end
	}
	start = clamp(start, len(items))
	end = clamp(end, len(items))
	if start >= end {
		return b.from(nil)
	}
	return b.from(items[start:end])
}

// Reverse returns a new container with the items in reverse order.
// The result never aliases the receiver's storage.
func (b base[T, C]) Reverse() C {
	items := b.view()
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return b.from(out)
}

// Clone returns an independent copy of the container.
func (b base[T, C]) Clone() C { return b.from(b.view()) }

// ─────────────────────────────────────────────────────────────────────────────
// Rendering & materialization
// ─────────────────────────────────────────────────────────────────────────────

// MkString renders the items joined by sep and wrapped in prefix and
// suffix, formatting each item with fmt's %v verb.
func (b base[T, C]) MkString(prefix, sep, suffix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for i, item := range b.view() {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteString(suffix)
	return sb.String()
}

// ToList materializes an independent List snapshot of the items.
func (b base[T, C]) ToList() *List[T] { return ListFrom(b.view()) }

// ToSlice materializes an independent slice snapshot of the items.
func (b base[T, C]) ToSlice() []T {
	items := b.view()
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// clamp restricts n to [0, size].
func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	return min(n, size)
}

// extractPath resolves a dot path against an item. An empty path
// yields the item itself; non-map items never resolve a path.
func extractPath(item any, path string) (any, bool) {
	if path == "" {
		return item, true
	}
	m, ok := item.(map[string]any)
	if !ok {
		return nil, false
	}
	return dotpath.Get(m, path)
}
