package collections

// KeyFunc derives the comparison key for a candidate key. Two keys
// are the same logical key when their derived keys compare equal
// with ==.
//
// Derived keys must be comparable; the type system cannot enforce
// this, so returning an uncomparable value (a slice, a map, a func)
// panics at the first lookup. A nil KeyFunc means identity: the key
// itself is its own comparison key, giving value equality for plain
// values and reference equality for pointers.
type KeyFunc[K any] func(K) any

// Entry is a stored key/value pair inside a [KeyedMap].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// KeyedMap is an associative container whose key equality is decided
// by a [KeyFunc] rather than by the keys themselves. Entries keep
// insertion order, so repeated iteration without mutation is
// deterministic.
//
// Lookup scans the entries linearly, comparing derived keys. That is
// a deliberate trade-off: arbitrary caller-defined equality instead
// of the O(1) hashing a native map would give.
//
// A KeyedMap performs no internal locking; callers must serialize
// mutation.
type KeyedMap[K, V any] struct {
	keyFn   KeyFunc[K]
	entries []Entry[K, V]
}

// NewKeyedMap creates an empty KeyedMap using keyFn to derive
// comparison keys. Pass nil for identity keying.
func NewKeyedMap[K, V any](keyFn KeyFunc[K]) *KeyedMap[K, V] {
	if keyFn == nil {
		keyFn = func(k K) any { return k }
	}
	return &KeyedMap[K, V]{keyFn: keyFn}
}

// indexOf returns the position of the entry matching key, or -1.
func (m *KeyedMap[K, V]) indexOf(key K) int {
	dk := m.keyFn(key)
	for i := range m.entries {
		if m.keyFn(m.entries[i].Key) == dk {
			return i
		}
	}
	return -1
}

// Put stores value under key. When an entry with the same derived key
// exists its value is replaced (the originally stored key is kept)
// and the previous value is returned with replaced == true; otherwise
// a new entry is appended and the zero value is returned with
// replaced == false.
func (m *KeyedMap[K, V]) Put(key K, value V) (prev V, replaced bool) {
	if i := m.indexOf(key); i >= 0 {
		prev = m.entries[i].Value
		m.entries[i].Value = value
		return prev, true
	}
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
	var zero V
	return zero, false
}

// Get returns the value stored under the entry whose derived key
// equals key's derived key, or the zero value and false.
func (m *KeyedMap[K, V]) Get(key K) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether an entry matches key.
func (m *KeyedMap[K, V]) ContainsKey(key K) bool {
	return m.indexOf(key) >= 0
}

// Remove deletes the entry matching key and returns its value, or
// the zero value and false when no entry matches.
func (m *KeyedMap[K, V]) Remove(key K) (V, bool) {
	i := m.indexOf(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	v := m.entries[i].Value
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return v, true
}

// RemoveIf deletes every entry for which pred returns true and
// returns the number removed. Remaining entries keep their order.
func (m *KeyedMap[K, V]) RemoveIf(pred func(K, V) bool) int {
	kept := m.entries[:0]
	removed := 0
	for _, e := range m.entries {
		if pred(e.Key, e.Value) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return removed
}

// RemoveAll deletes every entry.
func (m *KeyedMap[K, V]) RemoveAll() {
	m.entries = m.entries[:0]
}

// Each calls fn(value, key) for every entry in insertion order.
func (m *KeyedMap[K, V]) Each(fn func(V, K)) {
	for _, e := range m.entries {
		fn(e.Value, e.Key)
	}
}

// Keys returns an independent List of all keys in insertion order.
func (m *KeyedMap[K, V]) Keys() *List[K] {
	return ListFrom(m.keySlice())
}

// Entries returns an independent snapshot of all entries in
// insertion order.
func (m *KeyedMap[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.entries))
	copy(out, m.entries)
	return out
}

// Size returns the number of entries.
func (m *KeyedMap[K, V]) Size() int { return len(m.entries) }

func (m *KeyedMap[K, V]) keySlice() []K {
	out := make([]K, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}
