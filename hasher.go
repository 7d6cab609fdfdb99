package buckethash

import (
	"bytes"
	"hash/maphash"
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// A Hasher defines a hash function and an equivalence relation over values of type T.
// Implementations must keep them consistent: Equal(a, b) implies Hash(a) == Hash(b).
// Hash may return negative values.
type Hasher[T any] interface {
	Hash(T) int
	Equal(a, b T) bool
}

// seed is shared by every ComparableHasher so that tables built in the same
// process agree on hash codes.
var seed = maphash.MakeSeed()

// ComparableHasher hashes any comparable type with hash/maphash and compares with ==.
// Hash values are stable only within one process.
type ComparableHasher[T comparable] struct{}

func (ComparableHasher[T]) Hash(v T) int      { return int(maphash.Comparable(seed, v)) }
func (ComparableHasher[T]) Equal(a, b T) bool { return a == b }

// IntHasher uses the integer itself as its hash.
type IntHasher[T constraints.Integer] struct{}

func (IntHasher[T]) Hash(v T) int      { return int(v) }
func (IntHasher[T]) Equal(a, b T) bool { return a == b }

// StringHasher is the classic 31-multiplier polynomial over UTF-16 code units,
// computed in 32-bit arithmetic. Long strings regularly produce negative hashes.
type StringHasher struct{}

func (StringHasher) Hash(s string) int {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(c)
	}
	return int(h)
}

func (StringHasher) Equal(a, b string) bool { return a == b }

// XXHasher hashes strings with xxhash. The result is stable across processes.
type XXHasher struct{}

func (XXHasher) Hash(s string) int      { return int(xxhash.Sum64String(s)) }
func (XXHasher) Equal(a, b string) bool { return a == b }

// BytesHasher hashes byte slices by content with xxhash. A nil slice counts as absent
// for the Table, an empty non-nil slice does not.
type BytesHasher struct{}

func (BytesHasher) Hash(b []byte) int      { return int(xxhash.Sum64(b)) }
func (BytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

type funcHasher[T any] struct {
	hash  func(T) int
	equal func(a, b T) bool
}

func (f funcHasher[T]) Hash(v T) int      { return f.hash(v) }
func (f funcHasher[T]) Equal(a, b T) bool { return f.equal(a, b) }

// HasherFunc builds a Hasher from a pair of functions.
func HasherFunc[T any](hash func(T) int, equal func(a, b T) bool) Hasher[T] {
	must(hash != nil && equal != nil, "hash and equal functions are required")
	return funcHasher[T]{hash: hash, equal: equal}
}
