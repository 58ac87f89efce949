// Package datastruct provides small generic in-memory collection types.
//
// The package is meant to be embedded into a larger application,
// it has no dependency on any IO, persistence or synchronisation mechanism.
// When a collection is shared between goroutines, guarding it is the caller's responsibility.
package datastruct

import "iter"

// KVS stands for Key Value Store, and a common interface for map[K]V types.
type KVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	Set(key K, val V)
	Delete(key K)
	Keys() []K
	ToMap() map[K]V
	Iter() iter.Seq2[K, V]
	Sizer
}

// List is a common interface for ordered value sequences.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

type Sizer interface {
	Len() int
}
