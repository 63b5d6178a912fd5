// Package collections provides richer alternatives to raw slices: a
// mutable ordered [List], a [KeyedMap] whose key equality is defined
// by a caller-supplied key function, and a [Set] of unique items
// derived from it, all sharing one read-only traversal protocol.
//
// # Containers
//
//	l := collections.NewList(1, 2, 3)
//	s := collections.NewSet("a", "b")
//	m := collections.NewKeyedMap[string, int](nil) // nil → identity keying
//
// # Pluggable key equality
//
// Go maps require comparable keys and compare them intrinsically. A
// KeyedMap instead derives a comparison key from every candidate via
// its [KeyFunc], so two distinct values (or pointers) can act as the
// same logical key:
//
//	byID := collections.NewKeyedMap[*User, string](func(u *User) any {
//	    return u.ID
//	})
//	byID.Put(u1, "admin")
//	byID.Get(u2) // hit, as long as u2.ID == u1.ID
//
// Lookup is a linear scan over the entries. That trades O(1) hashing
// for arbitrary caller-defined equality, which is the point of the
// type; reach for a plain Go map when intrinsic equality is enough.
//
// # Traversal protocol
//
// List and Set share one chainable, read-only surface — Filter, Map,
// Fold, Find, Partition, Grouped, GroupBy, Sorted, MkString and
// friends. Every transforming method returns a new container of the
// receiver's concrete kind:
//
//	evens := collections.NewList(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse() // *List[int]{6, 4, 2}
//
// Map accepts a callback returning either a replacement item or the
// reserved [Omit] sentinel, expressing filter+map in a single pass:
//
//	odds := l.Map(func(n int) any {
//	    if n%2 == 0 {
//	        return collections.Omit
//	    }
//	    return n
//	})
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters,
// so operations that change the element type are package-level
// functions accepting any [Iterable]: [Map], [FlatMap], [Fold],
// [Zip], [GroupBy], [KeyBy].
//
// # Concurrency
//
// Containers perform no internal locking. Concurrent reads of one
// container are safe; callers must serialize mutation.
package collections
