package collections_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-keyed-collections/collections"
)

type user struct {
	ID   int
	Name string
}

func byID(u user) any { return u.ID }

func TestKeyedMapIdentityKeying(t *testing.T) {
	m := collections.NewKeyedMap[string, int](nil)
	m.Put("a", 1)
	m.Put("b", 2)

	v, ok := m.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := m.Get("z"); ok {
		t.Fatal("Get of absent key should report false")
	}
	if m.Size() != 2 {
		t.Fatalf("Size = %d, want 2", m.Size())
	}
}

// two distinct values must act as the same key when the KeyFunc says so
func TestKeyedMapCustomKeying(t *testing.T) {
	m := collections.NewKeyedMap[user, string](byID)
	m.Put(user{1, "Alice"}, "admin")

	v, ok := m.Get(user{1, "completely different name"})
	if !ok || v != "admin" {
		t.Fatalf("Get by derived key = %v, %v", v, ok)
	}
	if !m.ContainsKey(user{1, ""}) {
		t.Fatal("ContainsKey should use the derived key")
	}
	if m.ContainsKey(user{2, "Alice"}) {
		t.Fatal("different derived key should not match")
	}
}

func TestKeyedMapPutReplaces(t *testing.T) {
	m := collections.NewKeyedMap[user, string](byID)
	if _, replaced := m.Put(user{1, "Alice"}, "first"); replaced {
		t.Fatal("first Put should not report replaced")
	}
	prev, replaced := m.Put(user{1, "Alicia"}, "second")
	if !replaced || prev != "first" {
		t.Fatalf("Put = %q, %v; want previous value and replaced", prev, replaced)
	}
	if m.Size() != 1 {
		t.Fatalf("Size = %d after replacing Put", m.Size())
	}
	// the originally stored key survives a value replacement
	keys := m.Keys().ToSlice()
	if keys[0].Name != "Alice" {
		t.Fatalf("stored key = %+v, want the original", keys[0])
	}
}

func TestKeyedMapRemove(t *testing.T) {
	m := collections.NewKeyedMap[string, int](func(s string) any { return strings.ToLower(s) })
	m.Put("Alpha", 1)
	m.Put("Beta", 2)

	v, ok := m.Remove("ALPHA") // matches via derived key
	if !ok || v != 1 {
		t.Fatalf("Remove = %v, %v", v, ok)
	}
	if m.Size() != 1 {
		t.Fatalf("Size = %d after Remove", m.Size())
	}
	if _, ok := m.Remove("gone"); ok {
		t.Fatal("Remove of absent key should report false")
	}
}

func TestKeyedMapRemoveIf(t *testing.T) {
	m := collections.NewKeyedMap[string, int](nil)
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	removed := m.RemoveIf(func(_ string, v int) bool { return v%2 == 1 })
	if removed != 2 {
		t.Fatalf("RemoveIf removed %d, want 2", removed)
	}
	assertSlice(t, m.Keys().ToSlice(), []string{"b"})
}

func TestKeyedMapRemoveAll(t *testing.T) {
	m := collections.NewKeyedMap[string, int](nil)
	m.Put("a", 1)
	m.RemoveAll()
	if m.Size() != 0 {
		t.Fatal("RemoveAll should empty the map")
	}
}

func TestKeyedMapEachOrder(t *testing.T) {
	m := collections.NewKeyedMap[string, int](nil)
	m.Put("x", 10)
	m.Put("y", 20)
	m.Put("z", 30)
	m.Put("y", 21) // replacement must not change position

	var keys []string
	var vals []int
	m.Each(func(v int, k string) {
		keys = append(keys, k)
		vals = append(vals, v)
	})
	assertSlice(t, keys, []string{"x", "y", "z"})
	assertSlice(t, vals, []int{10, 21, 30})
}

func TestKeyedMapKeysSnapshot(t *testing.T) {
	m := collections.NewKeyedMap[string, int](nil)
	m.Put("a", 1)
	keys := m.Keys()
	keys.Add("rogue")
	if m.Size() != 1 {
		t.Fatal("mutating the Keys snapshot must not affect the map")
	}
}

func TestKeyedMapEntries(t *testing.T) {
	m := collections.NewKeyedMap[string, int](nil)
	m.Put("a", 1)
	m.Put("b", 2)
	entries := m.Entries()
	if len(entries) != 2 || entries[0].Key != "a" || entries[1].Value != 2 {
		t.Fatalf("Entries = %v", entries)
	}
	entries[0].Value = 99
	if v, _ := m.Get("a"); v != 1 {
		t.Fatal("Entries must be an independent snapshot")
	}
}
