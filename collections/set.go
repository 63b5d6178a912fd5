package collections

// Set is a container of unique items built entirely on a [KeyedMap]:
// items are stored as keys with an empty-struct presence marker, so
// the Set inherits the map's KeyFunc equality and its insertion-order
// iteration.
//
// Create one with [NewSet] (identity keying) or [NewKeyedSet]. The
// full traversal protocol (Filter, Map, Sorted, Partition, …) is
// available and returns new Sets keyed the same way.
type Set[T any] struct {
	base[T, *Set[T]]
	m *KeyedMap[T, struct{}]
}

// NewSet creates a Set with identity keying from the given items.
// Duplicate items collapse to the first occurrence.
func NewSet[T any](items ...T) *Set[T] {
	return NewKeyedSet[T](nil, items...)
}

// NewKeyedSet creates a Set whose item equality is decided by keyFn
// (nil for identity) and adds the given items, collapsing duplicates
// to the first occurrence.
func NewKeyedSet[T any](keyFn KeyFunc[T], items ...T) *Set[T] {
	s := &Set[T]{m: NewKeyedMap[T, struct{}](keyFn)}
	s.base = base[T, *Set[T]]{
		view: func() []T { return s.m.keySlice() },
		from: func(items []T) *Set[T] {
			return NewKeyedSet(s.m.keyFn, items...)
		},
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was newly inserted. Returns
// false, leaving the Set unchanged, when an item with the same
// derived key is already present.
func (s *Set[T]) Add(item T) bool {
	if s.m.ContainsKey(item) {
		return false
	}
	s.m.Put(item, struct{}{})
	return true
}

// Contains reports whether an item with the same derived key as item
// is present.
func (s *Set[T]) Contains(item T) bool {
	return s.m.ContainsKey(item)
}

// Remove deletes the item matching item's derived key and reports
// whether it was present.
func (s *Set[T]) Remove(item T) bool {
	_, ok := s.m.Remove(item)
	return ok
}

// RemoveIf deletes every item for which pred returns true and returns
// the number removed.
func (s *Set[T]) RemoveIf(pred func(T) bool) int {
	return s.m.RemoveIf(func(item T, _ struct{}) bool { return pred(item) })
}

// RemoveAll deletes every item.
func (s *Set[T]) RemoveAll() { s.m.RemoveAll() }

// Union returns a new Set holding the items of both s and other.
// The result uses s's KeyFunc, so items of other that collide with an
// item of s under s's rule collapse into it. Symmetric in membership,
// not in keying.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := NewKeyedSet(s.m.keyFn, s.m.keySlice()...)
	other.Each(func(item T) { out.Add(item) })
	return out
}

// Intersect returns a new Set of the items of s that other contains.
// Candidates come from s but membership is tested by other's rule, so
// Intersect is not guaranteed symmetric when the two Sets use
// different KeyFuncs.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	return s.Filter(other.Contains)
}

// Diff returns a new Set of the items of s that other does not
// contain, membership tested by other's rule.
func (s *Set[T]) Diff(other *Set[T]) *Set[T] {
	return s.Filter(func(item T) bool { return !other.Contains(item) })
}

// String renders the items in insertion order.
// It implements [fmt.Stringer].
func (s *Set[T]) String() string {
	return s.MkString("{", ", ", "}")
}
