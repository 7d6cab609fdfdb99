package buckethash

import (
	"fmt"
	"strings"
)

type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// chain is the singly linked list behind one bucket. It never checks that its
// keys actually hash to its bucket; routing belongs to the Table.
type chain[K, V any] struct {
	head  *entry[K, V] // nil while the chain is empty
	equal func(a, b K) bool
}

func newChain[K, V any](equal func(a, b K) bool) *chain[K, V] {
	return &chain[K, V]{
		head:  nil,
		equal: equal,
	}
}

func (c *chain[K, V]) empty() bool {
	return c.head == nil
}

func (c *chain[K, V]) len() int {
	n := 0
	for e := c.head; e != nil; e = e.next {
		n++
	}
	return n
}

// find returns the entry holding key, or nil.
func (c *chain[K, V]) find(key K) *entry[K, V] {
	for e := c.head; e != nil; e = e.next {
		if c.equal(e.key, key) {
			return e
		}
	}
	return nil
}

func (c *chain[K, V]) get(key K) (V, bool) {
	if e := c.find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// put overwrites the value of an existing entry in place, or prepends a new one.
func (c *chain[K, V]) put(key K, value V) (prev V, replaced bool) {
	if e := c.find(key); e != nil {
		prev, e.value = e.value, value
		return prev, true
	}

	c.head = &entry[K, V]{key: key, value: value, next: c.head}
	return prev, false
}

func (c *chain[K, V]) remove(key K) (V, bool) {
	var zero V
	target := c.find(key)
	if target == nil {
		return zero, false
	}

	if target == c.head {
		c.head = target.next
		return target.value, true
	}

	prev := c.head
	for prev.next != target {
		prev = prev.next
	}
	prev.next = target.next
	return target.value, true
}

func (c *chain[K, V]) clear() {
	c.head = nil
}

func (c *chain[K, V]) keys() []K {
	keys := make([]K, 0, c.len())
	for e := c.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// values lists values head to tail, i.e. most recently inserted first.
func (c *chain[K, V]) values() []V {
	values := make([]V, 0, c.len())
	for e := c.head; e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// isHealthy checks that no key occurs twice. Used primarily for tests.
func (c *chain[K, V]) isHealthy() bool {
	for e := c.head; e != nil; e = e.next {
		for o := e.next; o != nil; o = o.next {
			if c.equal(e.key, o.key) {
				return false
			}
		}
	}
	return true
}

func (c *chain[K, V]) String() string {
	var sb strings.Builder
	for e := c.head; e != nil; e = e.next {
		fmt.Fprintf(&sb, "k: %v v: %v\n", e.key, e.value)
	}
	return sb.String()
}
