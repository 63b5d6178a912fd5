package collections_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-keyed-collections/collections"
)

func ExampleNewList() {
	l := collections.NewList(1, 2, 3)
	fmt.Println(l.Size(), l)
	// Output: 3 [1, 2, 3]
}

func ExampleList_Filter() {
	result := collections.NewList(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 == 0 }).
		Reverse()
	fmt.Println(result)
	// Output: [6, 4, 2]
}

func ExampleOmit() {
	result := collections.NewList(1, 2, 3, 4).Map(func(n int) any {
		if n%2 == 0 {
			return collections.Omit
		}
		return n * 10
	})
	fmt.Println(result)
	// Output: [10, 30]
}

func ExampleList_Insert() {
	l := collections.NewList(1, 3, 5)
	l.Insert(4)
	l.Insert(0)
	fmt.Println(l)
	// Output: [0, 1, 3, 4, 5]
}

func ExampleSortOptions() {
	names := collections.NewList("cherry", "", "Apple", "banana")
	fmt.Println(names.Sorted(collections.SortOptions[string]{IgnoreCase: true}))
	// Output: [Apple, banana, cherry, ]
}

func ExampleNewKeyedMap() {
	type point struct{ X, Y int }
	m := collections.NewKeyedMap[point, string](func(p point) any { return p.X })
	m.Put(point{1, 1}, "first column")
	v, ok := m.Get(point{1, 99}) // same derived key
	fmt.Println(v, ok)
	// Output: first column true
}

func ExampleNewKeyedSet() {
	s := collections.NewKeyedSet(func(s string) any { return len(s) }, "go", "is", "fun")
	fmt.Println(s) // "is" collapsed into "go": same length
	// Output: {go, fun}
}

func ExampleSet_Union() {
	a := collections.NewSet(1, 2)
	b := collections.NewSet(2, 3)
	fmt.Println(a.Union(b), a.Intersect(b), a.Diff(b))
	// Output: {1, 2, 3} {2} {1}
}

func ExampleMap() {
	result := collections.Map(
		collections.NewList(1, 2, 3),
		func(n int) string { return strconv.Itoa(n * n) },
	)
	fmt.Println(result)
	// Output: [1, 4, 9]
}

func ExampleFold() {
	total := collections.Fold(
		collections.NewList("a", "bb", "ccc"),
		0,
		func(s string, acc int) int { return acc + len(s) },
	)
	fmt.Println(total)
	// Output: 6
}

func ExampleZip() {
	pairs := collections.Zip(
		collections.NewList("a", "b"),
		collections.NewList(1, 2),
	)
	pairs.Each(func(p collections.Pair[string, int]) {
		fmt.Printf("%s=%d\n", p.First, p.Second)
	})
	// Output:
	// a=1
	// b=2
}

func ExampleList_GroupBy() {
	groups := collections.NewList(1, 2, 3, 4, 5, 6).GroupBy(func(n int) any {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	groups.Each(func(g *collections.List[int], key any) {
		fmt.Println(key, g)
	})
	// Output:
	// odd [1, 3, 5]
	// even [2, 4, 6]
}
