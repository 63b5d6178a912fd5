package collections

import "fmt"

// This file contains package-level generic functions for operations
// that change the element type (T → U). Go generics do not allow
// methods to introduce their own type parameters, so these operations
// cannot live on the traversal protocol. Each accepts any [Iterable],
// so List and Set work alike, and each materializes its result as a
// List.

// Map applies fn to every item and returns a new List[U].
//
//	doubled := collections.Map(collections.NewList(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](it Iterable[T], fn func(T) U) *List[U] {
	out := make([]U, 0, it.Size())
	it.Each(func(item T) { out = append(out, fn(item)) })
	return ListFrom(out)
}

// FlatMap applies fn to every item (producing a []U per item) and
// flattens the results into a single List[U].
//
//	words := collections.FlatMap(collections.NewList("a b", "c"),
//	    func(s string) []string { return strings.Fields(s) })
//	// → ["a", "b", "c"]
func FlatMap[T, U any](it Iterable[T], fn func(T) []U) *List[U] {
	out := make([]U, 0, it.Size())
	it.Each(func(item T) { out = append(out, fn(item)...) })
	return ListFrom(out)
}

// Fold accumulates the items left to right into a value of type U:
// op receives each item and the accumulator so far.
//
//	total := collections.Fold(names, 0,
//	    func(s string, acc int) int { return acc + len(s) })
func Fold[T, U any](it Iterable[T], initial U, op func(item T, acc U) U) U {
	acc := initial
	it.Each(func(item T) { acc = op(item, acc) })
	return acc
}

// Zip combines two containers element by element into Pairs, stopping
// at the shorter of the two.
func Zip[A, B any](a Iterable[A], b Iterable[B]) *List[Pair[A, B]] {
	as, bs := a.ToSlice(), b.ToSlice()
	n := min(len(as), len(bs))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: as[i], Second: bs[i]}
	}
	return ListFrom(out)
}

// GroupBy groups the items into a native Go map keyed by the
// comparable value extracted by fn. Each group preserves item order.
//
// For grouping by values of arbitrary type with KeyFunc-style
// equality, use the GroupBy method on the container instead.
func GroupBy[T any, K comparable](it Iterable[T], fn func(T) K) map[K]*List[T] {
	groups := make(map[K]*List[T])
	it.Each(func(item T) {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = NewList[T]()
		}
		groups[k].Add(item)
	})
	return groups
}

// KeyBy builds a native Go map keyed by the value extracted by fn.
// When several items share a key, the last one wins.
func KeyBy[T any, K comparable](it Iterable[T], fn func(T) K) map[K]T {
	out := make(map[K]T, it.Size())
	it.Each(func(item T) { out[fn(item)] = item })
	return out
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
