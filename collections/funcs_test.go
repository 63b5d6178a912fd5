package collections_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/hasbyte1/go-keyed-collections/collections"
)

func TestMapFunc(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n int) string {
		return strconv.Itoa(n * 2)
	})
	assertSlice(t, got.ToSlice(), []string{"2", "4", "6"})
}

func TestMapFuncOnSet(t *testing.T) {
	got := collections.Map(collections.NewSet("a", "bb"), func(s string) int {
		return len(s)
	})
	assertSlice(t, got.ToSlice(), []int{1, 2})
}

func TestFlatMapFunc(t *testing.T) {
	got := collections.FlatMap(collections.NewList("a b", "c"), func(s string) []string {
		return strings.Fields(s)
	})
	assertSlice(t, got.ToSlice(), []string{"a", "b", "c"})
}

func TestFoldFunc(t *testing.T) {
	got := collections.Fold(collections.NewList("a", "bb", "ccc"), 0,
		func(s string, acc int) int { return acc + len(s) })
	if got != 6 {
		t.Fatalf("Fold = %d, want 6", got)
	}
}

func TestZip(t *testing.T) {
	pairs := collections.Zip(
		collections.NewList("a", "b", "c"),
		ints(1, 2), // shorter side wins
	)
	assertSlice(t, pairs.ToSlice(), []collections.Pair[string, int]{
		{First: "a", Second: 1},
		{First: "b", Second: 2},
	})
}

func TestPairString(t *testing.T) {
	p := collections.Pair[string, int]{First: "a", Second: 1}
	if got := p.String(); got != "(a, 1)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGroupByFunc(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4, 5, 6), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	if len(groups) != 2 {
		t.Fatalf("GroupBy produced %d groups", len(groups))
	}
	assertSlice(t, groups["even"].ToSlice(), []int{2, 4, 6})
	assertSlice(t, groups["odd"].ToSlice(), []int{1, 3, 5})
}

func TestKeyBy(t *testing.T) {
	got := collections.KeyBy(collections.NewList(
		user{1, "Alice"}, user{2, "Bob"}, user{1, "Alicia"},
	), func(u user) int { return u.ID })
	if len(got) != 2 {
		t.Fatalf("KeyBy produced %d keys", len(got))
	}
	if got[1].Name != "Alicia" {
		t.Fatal("KeyBy should keep the last item per key")
	}
}
