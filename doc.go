// Package buckethash provides Table, a generic hash map with a fixed number of
// buckets that resolves collisions by separate chaining.
//
// Keys and values are hashed and compared through a Hasher, so any type can be
// stored as long as a consistent hash and equality are supplied. The bucket count
// is chosen once, at construction; a Table never rehashes.
//
// A Table is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves.
package buckethash
