package rt

import (
	"reflect"
	"slices"
)

// OrderedSet is the fixed concrete set implementation codecs reconstruct
// into. It preserves insertion order and deduplicates by value equality.
// Comparable elements dedupe through a hash index; uncomparable ones
// (slices, maps, reconstructed containers) by a deep-equality scan.
type OrderedSet struct {
	order []any
	index map[any]struct{}
}

// NewOrderedSet returns a set seeded with the given values in order.
func NewOrderedSet(values ...any) *OrderedSet {
	s := &OrderedSet{index: map[any]struct{}{}}
	for _, v := range values {
		s.Add(v)
	}

	return s
}

// Add appends v unless it is already present. Returns true if v was added.
func (s *OrderedSet) Add(v any) bool {
	if s.Contains(v) {
		return false
	}

	if hashable(v) {
		s.index[v] = struct{}{}
	}

	s.order = append(s.order, v)

	return true
}

// Contains returns true if v is in the set.
func (s *OrderedSet) Contains(v any) bool {
	if hashable(v) {
		_, ok := s.index[v]
		return ok
	}

	return slices.ContainsFunc(s.order, func(e any) bool {
		return reflect.DeepEqual(e, v)
	})
}

func hashable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// Values returns the elements in insertion order. The slice is shared;
// callers must not mutate it.
func (s *OrderedSet) Values() []any {
	return s.order
}

// Len returns the number of elements.
func (s *OrderedSet) Len() int {
	return len(s.order)
}

// SparseArray is the integer-keyed sparse container. Iteration order is
// ascending by key, matching the platform container it mirrors.
type SparseArray struct {
	entries map[int32]any
}

// NewSparseArray returns an empty sparse array.
func NewSparseArray() *SparseArray {
	return &SparseArray{entries: map[int32]any{}}
}

// Put stores v under key.
func (a *SparseArray) Put(key int32, v any) {
	a.entries[key] = v
}

// Get returns the value under key, if any.
func (a *SparseArray) Get(key int32) (any, bool) {
	v, ok := a.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (a *SparseArray) Len() int {
	return len(a.entries)
}

// Keys returns the keys in ascending order.
func (a *SparseArray) Keys() []int32 {
	keys := make([]int32, 0, len(a.entries))
	for k := range a.entries {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// SparseBoolArray is the boolean-valued sparse container.
type SparseBoolArray struct {
	entries map[int32]bool
}

// NewSparseBoolArray returns an empty sparse bool array.
func NewSparseBoolArray() *SparseBoolArray {
	return &SparseBoolArray{entries: map[int32]bool{}}
}

// Put stores v under key.
func (a *SparseBoolArray) Put(key int32, v bool) {
	a.entries[key] = v
}

// Get returns the value under key, if any.
func (a *SparseBoolArray) Get(key int32) (bool, bool) {
	v, ok := a.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (a *SparseBoolArray) Len() int {
	return len(a.entries)
}

// Keys returns the keys in ascending order.
func (a *SparseBoolArray) Keys() []int32 {
	keys := make([]int32, 0, len(a.entries))
	for k := range a.entries {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
