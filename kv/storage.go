package kv

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as
// a map but uses linear search instead, which proves to be more efficient on relatively
// low amount of entries, which often enough is the case for headers. Unlike a map, it
// also keeps the insertion order and the original spelling of the keys, even though
// lookups ignore case.
type Storage struct {
	pairs    []Pair
	keysBuff []string
}

func New() *Storage {
	return NewPrealloc(0)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from the given map.
// Note: as maps are unordered, the resulting underlying structure will also contain
// unordered pairs.
func NewFromMap(m map[string]string) *Storage {
	kv := NewPrealloc(len(m))

	for key, value := range m {
		kv.Set(key, value)
	}

	return kv
}

// Set inserts a new pair of key and value, or overwrites the value of an already
// existing key, matched ignoring case. On overwrite the pair keeps its position
// and the spelling it was first inserted with, so a key holds exactly one value
// and the last write wins.
func (s *Storage) Set(key, value string) *Storage {
	for i := range s.pairs {
		if strcomp.EqualFold(key, s.pairs[i].Key) {
			s.pairs[i].Value = value
			return s
		}
	}

	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the value corresponding to the key. Otherwise, empty string is returned
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or the custom fallback,
// defined via the second parameter
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value corresponding to the key and a bool, indicating whether the key
// exists. In case it doesn't, empty string will be returned either
func (s *Storage) Get(key string) (string, bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates, whether there's an entry of the key
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Keys returns all the keys in their insertion order.
//
// WARNING: calling it twice will override values, returned by the first call. Consider
// copying the returned slice for safe use
func (s *Storage) Keys() []string {
	s.keysBuff = s.keysBuff[:0]

	for _, pair := range s.pairs {
		s.keysBuff = append(s.keysBuff, pair.Key)
	}

	return s.keysBuff
}

// Iter returns an iterator over the pairs
func (s *Storage) Iter() iter.Iterator[Pair] {
	return iter.Slice(s.pairs)
}

// Len returns a number of stored pairs
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Clone creates a deep copy, which may be used later or stored somewhere safely. However,
// it comes at cost of multiple allocations
func (s *Storage) Clone() *Storage {
	return &Storage{
		pairs:    clone(s.pairs),
		keysBuff: clone(s.keysBuff),
	}
}

// Expose reveals the underlying pairs slice. Try to avoid the method if possible, as
// changing the signature may not affect a major version
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear all the entries. However, all the allocated space won't be freed
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
