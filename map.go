package buckethash

// Reader is the read side of a key/value collection, enough to copy it.
type Reader[K, V any] interface {
	Keys() []K
	Get(key K) (V, bool)
}

// Map is the full map contract implemented by Table.
type Map[K, V any] interface {
	Reader[K, V]
	Put(key K, value V) (prev V, replaced bool, err error)
	Remove(key K) (V, bool, error)
	ContainsKey(key K) (bool, error)
	ContainsValue(value V) (bool, error)
	Len() int
	IsEmpty() bool
	Clear()
	Values() []V
	PutAll(src Reader[K, V]) error
	HashCode() int
	Equal(other Map[K, V]) bool
	EntrySet() error
}

var _ Map[int, string] = (*Table[int, string])(nil)

// GoMap adapts a native Go map to Reader.
type GoMap[K comparable, V any] map[K]V

func (m GoMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (m GoMap[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// From returns a new table holding a copy of every pair in src.
// Later changes to either side are not shared.
func From[K, V any](src Reader[K, V], keys Hasher[K], values Hasher[V], opts ...Option) (*Table[K, V], error) {
	t := NewWithHashers(keys, values, opts...)
	if err := t.PutAll(src); err != nil {
		return nil, err
	}
	return t, nil
}

// FromMap copies a native Go map into a new table using ComparableHasher.
func FromMap[K, V comparable](m map[K]V, opts ...Option) (*Table[K, V], error) {
	return From[K, V](GoMap[K, V](m), ComparableHasher[K]{}, ComparableHasher[V]{}, opts...)
}
