package buckethash

import (
	"fmt"
	"reflect"
)

// floorMod returns x mod n in [0, n) for any x, unlike the % operator
// which keeps the sign of x.
func floorMod(x, n int) int {
	must(n > 0, "modulus must be positive, got %d", n)
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}

// must panics with a formatted message when cond does not hold.
func must(cond bool, f string, a ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(f, a...)
	panic(msg)
}

// isAbsent reports whether v is Go's closest equivalent of a null reference:
// a nil pointer, interface, map, slice, func or chan.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
