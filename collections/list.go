package collections

import (
	"fmt"
	"sort"
)

// List is a mutable, slice-backed ordered sequence. Mutation happens
// in place; all read-only operations come from the shared traversal
// protocol and return new Lists.
//
// Create one with [NewList] or [ListFrom] — the zero value is not
// usable. A List performs no internal locking; callers must serialize
// mutation.
type List[T any] struct {
	base[T, *List[T]]
	items []T
}

// NewList creates a List from a variadic list of items (copied).
func NewList[T any](items ...T) *List[T] {
	return ListFrom(items)
}

// ListFrom creates a List from a slice (the slice is copied).
func ListFrom[T any](items []T) *List[T] {
	l := &List[T]{items: append(make([]T, 0, len(items)), items...)}
	l.base = base[T, *List[T]]{
		view: func() []T { return l.items },
		from: ListFrom[T],
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Insertion
// ─────────────────────────────────────────────────────────────────────────────

// Add appends item at the end.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

// AddAt inserts item at index, shifting later items right. index may
// equal Size(), which appends. Returns [ErrIndexOutOfRange], without
// mutating, when index < 0 or index > Size().
func (l *List[T]) AddAt(item T, index int) error {
	if index < 0 || index > len(l.items) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(l.items))
	}
	l.items = append(l.items, item)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
	return nil
}

// Update replaces the item at index. Unlike [List.AddAt], index must
// address an existing item, so index == Size() is also out of range.
func (l *List[T]) Update(index int, item T) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(l.items))
	}
	l.items[index] = item
	return nil
}

// Insert places item into a list already sorted under cmp, using
// binary search. When cmp is omitted, items are compared ordinally
// ([SortOptions]-style: numerically, then byte-wise as strings).
// An item comparing equal to existing items lands after them.
func (l *List[T]) Insert(item T, cmps ...func(a, b T) int) {
	compare := func(a, b T) int { return compareOrdinal(a, b) }
	if len(cmps) > 0 && cmps[0] != nil {
		compare = cmps[0]
	}
	i := sort.Search(len(l.items), func(i int) bool {
		return compare(item, l.items[i]) < 0
	})
	l.items = append(l.items, item)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal
// ─────────────────────────────────────────────────────────────────────────────

// Remove deletes the first item equal to item (compared with ==) and
// returns it. Returns the zero value and false when no item matches.
// Panics when the list holds values of an uncomparable type.
func (l *List[T]) Remove(item T) (T, bool) {
	for i := range l.items {
		if any(l.items[i]) == any(item) {
			removed, _ := l.RemoveAt(i)
			return removed, true
		}
	}
	var zero T
	return zero, false
}

// RemoveAt deletes and returns the item at index.
// Returns [ErrIndexOutOfRange] when index does not address an item.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(l.items))
	}
	item := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return item, nil
}

// RemoveFirst deletes and returns the first item.
// Returns [ErrEmptyCollection] when the list is empty.
func (l *List[T]) RemoveFirst() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: RemoveFirst", ErrEmptyCollection)
	}
	return l.RemoveAt(0)
}

// RemoveLast deletes and returns the last item.
// Returns [ErrEmptyCollection] when the list is empty.
func (l *List[T]) RemoveLast() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: RemoveLast", ErrEmptyCollection)
	}
	return l.RemoveAt(len(l.items) - 1)
}

// RemoveAll deletes every item.
func (l *List[T]) RemoveAll() {
	l.items = l.items[:0]
}

// RemoveIf deletes every item for which pred returns true, in place,
// and returns a new List of exactly the removed items in their
// original order.
func (l *List[T]) RemoveIf(pred func(T) bool) *List[T] {
	kept := l.items[:0]
	removed := NewList[T]()
	for _, item := range l.items {
		if pred(item) {
			removed.Add(item)
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	return removed
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place sorting & conversion
// ─────────────────────────────────────────────────────────────────────────────

// Sort sorts the list in place, stably, under cmp.
func (l *List[T]) Sort(compare func(a, b T) int) {
	sort.SliceStable(l.items, func(i, j int) bool {
		return compare(l.items[i], l.items[j]) < 0
	})
}

// SortBy sorts the list in place, stably, by the values extracted by
// fn, compared ordinally.
func (l *List[T]) SortBy(fn func(T) any) {
	l.Sort(func(a, b T) int { return compareOrdinal(fn(a), fn(b)) })
}

// ToSet materializes a Set with identity keying from the current
// items, collapsing duplicates.
func (l *List[T]) ToSet() *Set[T] {
	return NewSet(l.items...)
}

// String renders the items in order.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	return l.MkString("[", ", ", "]")
}
