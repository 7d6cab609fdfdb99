package buckethash

import (
	crnd "crypto/rand"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var letterBytes = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

type set[T comparable] map[T]struct{}

func (s set[T]) add(e T) (dup bool) {
	if _, ok := s[e]; ok {
		return true
	}
	s[e] = struct{}{}
	return false
}

func setOf[T comparable](list []T) set[T] {
	s := make(set[T], len(list))
	for _, e := range list {
		s.add(e)
	}
	return s
}

func randASCIIString(n int) string {
	b := make([]byte, n)
	_, _ = crnd.Read(b)
	for i := range b {
		b[i] = letterBytes[int(b[i])%len(letterBytes)]
	}
	return string(b)
}

// GetData returns `nkeys` number of string, int pairs; each string is unique
func GetData(nkeys int) ([]string, []int) {
	keys := make([]string, nkeys)
	values := make([]int, nkeys)

	// non-unique values
	for i := range values {
		values[i] = rand.Intn(nkeys/2 + 1)
	}

	seen := make(set[string], nkeys)
	for i := 0; i < nkeys; i++ {
		key := randASCIIString(12)
		for seen.add(key) {
			key = randASCIIString(12)
		}
		keys[i] = key
	}
	return keys, values
}

// buildComparableTables returns a Table and a go native map built on the same data, and the keys used
func buildComparableTables(t testing.TB, nKeys, buckets int) (*Table[string, int], map[string]int, []string) {
	tbl := NewWithHashers[string, int](StringHasher{}, IntHasher[int]{}, WithBucketCount(buckets))
	goMap := map[string]int{}
	keys, values := GetData(nKeys)

	for i := 0; i < nKeys; i++ {
		_, _, err := tbl.Put(keys[i], values[i])
		require.NoError(t, err)
		goMap[keys[i]] = values[i]
	}
	return tbl, goMap, keys
}

// germanNumbers builds the 0/1/40 table used across tests. Integer keys hash to
// themselves, so each lands in the bucket of the same index.
func germanNumbers(t testing.TB) *Table[int, string] {
	tbl := NewWithHashers[int, string](IntHasher[int]{}, StringHasher{})
	for k, v := range map[int]string{0: "null", 1: "eins", 40: "vierzig"} {
		_, _, err := tbl.Put(k, v)
		require.NoError(t, err)
	}
	return tbl
}

// runTableHealthTests checks routing and per-chain uniqueness for every bucket.
func runTableHealthTests[K, V any](t *testing.T, tbl *Table[K, V]) {
	t.Helper()
	for i, c := range tbl.buckets {
		require.Truef(t, c.isHealthy(), "bucket %d holds a duplicate key", i)
		for e := c.head; e != nil; e = e.next {
			require.Equalf(t, i, floorMod(tbl.keyH.Hash(e.key), tbl.BucketCount()),
				"key %v stored in bucket %d", e.key, i)
		}
	}
}

// hasRepeatsFn reports whether two neighbouring elements of list are equal.
// On a sorted list that means list has duplicates.
func hasRepeatsFn[T any](list []T, eq func(a, b T) bool) bool {
	for i := 1; i < len(list); i++ {
		if eq(list[i-1], list[i]) {
			return true
		}
	}
	return false
}
