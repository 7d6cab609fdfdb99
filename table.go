package buckethash

import (
	"fmt"
	"strings"
)

// DefaultBucketCount is the number of buckets of a Table built without WithBucketCount.
const DefaultBucketCount = 101

type config struct {
	bucketCount int
}

// Option configures a Table at construction.
type Option func(*config)

// WithBucketCount sets the number of buckets. It is fixed for the lifetime of the
// table, so it should be sized for the expected number of entries.
func WithBucketCount(n int) Option {
	return func(c *config) {
		c.bucketCount = n
	}
}

// Table is a hash map with a fixed number of buckets, resolving collisions by
// separate chaining. Keys are routed to buckets[hash(key) mod BucketCount()].
// Tables never grow, so lookups cost O(1 + LoadFactor()).
type Table[K, V any] struct {
	buckets []*chain[K, V]
	keyH    Hasher[K]
	valH    Hasher[V]
}

// New returns an empty table for comparable keys and values, hashed with ComparableHasher.
func New[K, V comparable](opts ...Option) *Table[K, V] {
	return NewWithHashers[K, V](ComparableHasher[K]{}, ComparableHasher[V]{}, opts...)
}

// NewWithHashers returns an empty table that hashes and compares keys and values
// with the given Hashers.
func NewWithHashers[K, V any](keys Hasher[K], values Hasher[V], opts ...Option) *Table[K, V] {
	must(keys != nil && values != nil, "key and value hashers are required")
	cfg := config{bucketCount: DefaultBucketCount}
	for _, opt := range opts {
		opt(&cfg)
	}
	must(cfg.bucketCount > 0, "bucket count must be positive, got %d", cfg.bucketCount)

	t := &Table[K, V]{
		buckets: make([]*chain[K, V], cfg.bucketCount),
		keyH:    keys,
		valH:    values,
	}
	for i := range t.buckets {
		t.buckets[i] = newChain[K, V](keys.Equal)
	}
	return t
}

// BucketCount is fixed at construction.
func (t *Table[K, V]) BucketCount() int {
	return len(t.buckets)
}

// LoadFactor is the average chain length.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.Len()) / float64(t.BucketCount())
}

func (t *Table[K, V]) index(key K) int {
	return floorMod(t.keyH.Hash(key), len(t.buckets))
}

func (t *Table[K, V]) bucketFor(key K) *chain[K, V] {
	return t.buckets[t.index(key)]
}

// Put maps key to value. If key was present, its previous value is returned with replaced set.
func (t *Table[K, V]) Put(key K, value V) (prev V, replaced bool, err error) {
	if isAbsent(key) {
		return prev, false, nilKeyError("put")
	}
	if isAbsent(value) {
		return prev, false, nilValueError("put")
	}
	prev, replaced = t.bucketFor(key).put(key, value)
	return prev, replaced, nil
}

// Get returns the value mapped to key. A nil key is simply not found.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if isAbsent(key) {
		var zero V
		return zero, false
	}
	return t.bucketFor(key).get(key)
}

// Remove deletes key and returns the value it was mapped to. Removing a missing key is a no-op.
func (t *Table[K, V]) Remove(key K) (V, bool, error) {
	if isAbsent(key) {
		var zero V
		return zero, false, nilKeyError("remove")
	}
	v, ok := t.bucketFor(key).remove(key)
	return v, ok, nil
}

// ContainsKey reports whether key is mapped. A nil key is an error.
func (t *Table[K, V]) ContainsKey(key K) (bool, error) {
	if isAbsent(key) {
		return false, nilKeyError("contains key")
	}
	return t.bucketFor(key).find(key) != nil, nil
}

// ContainsValue scans every bucket for a value Equal to value.
func (t *Table[K, V]) ContainsValue(value V) (bool, error) {
	if isAbsent(value) {
		return false, nilValueError("contains value")
	}
	for _, c := range t.buckets {
		for e := c.head; e != nil; e = e.next {
			if t.valH.Equal(e.value, value) {
				return true, nil
			}
		}
	}
	return false, nil
}

// Len counts the entries of every bucket.
func (t *Table[K, V]) Len() int {
	n := 0
	for _, c := range t.buckets {
		n += c.len()
	}
	return n
}

// IsEmpty reports whether Len() == 0.
func (t *Table[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Clear empties every bucket. The bucket count is unchanged.
func (t *Table[K, V]) Clear() {
	for _, c := range t.buckets {
		c.clear()
	}
}

// Keys returns every key once, in no particular order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	for _, c := range t.buckets {
		keys = append(keys, c.keys()...)
	}
	return keys
}

// Values returns the values bucket by bucket in index order; within a bucket the
// most recently inserted key comes first.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.Len())
	for _, c := range t.buckets {
		values = append(values, c.values()...)
	}
	return values
}

// PutAll copies every pair of src into t. All pairs are validated first; on error
// t is left unchanged. Keys that src lists but cannot Get are skipped.
func (t *Table[K, V]) PutAll(src Reader[K, V]) error {
	keys := src.Keys()
	pairs := make([]entry[K, V], 0, len(keys))
	for _, k := range keys {
		if isAbsent(k) {
			return nilKeyError("put all")
		}
		v, ok := src.Get(k)
		if !ok {
			continue
		}
		if isAbsent(v) {
			return nilValueError("put all")
		}
		pairs = append(pairs, entry[K, V]{key: k, value: v})
	}

	for _, p := range pairs {
		t.bucketFor(p.key).put(p.key, p.value)
	}
	return nil
}

// HashCode is the sum of keyHash^valueHash over all entries. It does not depend
// on bucket count or insertion order.
func (t *Table[K, V]) HashCode() int {
	h := 0
	for _, c := range t.buckets {
		for e := c.head; e != nil; e = e.next {
			h += t.keyH.Hash(e.key) ^ t.valH.Hash(e.value)
		}
	}
	return h
}

// Equal reports whether other holds the same keys mapped to Equal values.
// The hash-code short-circuit hashes other's entries with t's Hashers, so
// tables built with different Hashers still compare by content.
func (t *Table[K, V]) Equal(other Map[K, V]) bool {
	if isAbsent(other) {
		return false
	}
	if other.Len() != t.Len() {
		return false
	}

	keys := other.Keys()
	theirs := make([]V, len(keys))
	h := 0
	for i, k := range keys {
		if isAbsent(k) {
			return false
		}
		v, ok := other.Get(k)
		if !ok {
			return false
		}
		theirs[i] = v
		h += t.keyH.Hash(k) ^ t.valH.Hash(v)
	}
	if h != t.HashCode() {
		return false
	}

	for i, k := range keys {
		mine, ok := t.Get(k)
		if !ok || !t.valH.Equal(mine, theirs[i]) {
			return false
		}
	}
	return true
}

// EntrySet always fails. A paired (key, value) view is not provided;
// combine Keys with Get instead.
func (t *Table[K, V]) EntrySet() error {
	return fmt.Errorf("entry set: %w", ErrUnsupportedOperation)
}

// Clone returns an independent copy with the same bucket count, hashers and chain order.
func (t *Table[K, V]) Clone() *Table[K, V] {
	cp := NewWithHashers(t.keyH, t.valH, WithBucketCount(t.BucketCount()))
	for i, c := range t.buckets {
		var tail *entry[K, V]
		for e := c.head; e != nil; e = e.next {
			n := &entry[K, V]{key: e.key, value: e.value}
			if tail == nil {
				cp.buckets[i].head = n
			} else {
				tail.next = n
			}
			tail = n
		}
	}
	return cp
}

func (t *Table[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for _, c := range t.buckets {
		for e := c.head; e != nil; e = e.next {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(&sb, "%v:%v", e.key, e.value)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
