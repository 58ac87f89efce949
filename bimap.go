package datastruct

import "iter"

// BiMap is a bidirectional map that maintains a one-to-one pairing between keys and values.
// Either side of a pair can be used to look up the other side.
// The zero value is ready to use.
//
// Invariant: the stored pairs form a bijection,
// a key belongs to at most one value and a value belongs to at most one key.
// Every mutation updates both directions or neither.
type BiMap[K comparable, V comparable] struct {
	forward Map[K, V]
	reverse Map[V, K]
}

func (bm *BiMap[K, V]) init() {
	if bm.forward == nil {
		bm.forward = Map[K, V]{}
	}
	if bm.reverse == nil {
		bm.reverse = Map[V, K]{}
	}
}

// Insert creates a new key-value pair.
//
// It returns ErrConflict when either the key is already paired with a value,
// or the value is already paired with a key.
// Both conditions are checked before any mutation takes place,
// a failed Insert leaves the BiMap untouched.
func (bm *BiMap[K, V]) Insert(key K, value V) error {
	bm.init()
	if cv, ok := bm.forward.Lookup(key); ok {
		return ErrConflict.F("key %v is already paired with %v", key, cv)
	}
	if ck, ok := bm.reverse.Lookup(value); ok {
		return ErrConflict.F("value %v is already paired with %v", value, ck)
	}
	bm.forward.Set(key, value)
	bm.reverse.Set(value, key)
	return nil
}

// GetByKey returns the value paired with the given key.
// It returns ErrNotFound when the key is not part of any pair.
func (bm BiMap[K, V]) GetByKey(key K) (V, error) {
	value, ok := bm.forward.Lookup(key)
	if !ok {
		return value, ErrNotFound.F("key %v is not in the bimap", key)
	}
	return value, nil
}

// GetByValue returns the key paired with the given value.
// It returns ErrNotFound when the value is not part of any pair.
func (bm BiMap[K, V]) GetByValue(value V) (K, error) {
	key, ok := bm.reverse.Lookup(value)
	if !ok {
		return key, ErrNotFound.F("value %v is not in the bimap", value)
	}
	return key, nil
}

// LookupByKey returns the value paired with the given key.
func (bm BiMap[K, V]) LookupByKey(key K) (V, bool) {
	return bm.forward.Lookup(key)
}

// LookupByValue returns the key paired with the given value.
func (bm BiMap[K, V]) LookupByValue(value V) (K, bool) {
	return bm.reverse.Lookup(value)
}

// DeleteByKey removes the pair that has the given key,
// and reports the value that was paired with it.
// Deleting a missing key is a no-op reported through the bool result.
func (bm *BiMap[K, V]) DeleteByKey(key K) (V, bool) {
	value, ok := bm.forward.Lookup(key)
	if !ok {
		return value, false
	}
	bm.forward.Delete(key)
	bm.reverse.Delete(value)
	return value, true
}

// DeleteByValue removes the pair that has the given value,
// and reports the key that was paired with it.
func (bm *BiMap[K, V]) DeleteByValue(value V) (K, bool) {
	key, ok := bm.reverse.Lookup(value)
	if !ok {
		return key, false
	}
	bm.reverse.Delete(value)
	bm.forward.Delete(key)
	return key, true
}

func (bm BiMap[K, V]) HasKey(key K) bool {
	_, ok := bm.forward.Lookup(key)
	return ok
}

func (bm BiMap[K, V]) HasValue(value V) bool {
	_, ok := bm.reverse.Lookup(value)
	return ok
}

func (bm BiMap[K, V]) Len() int { return bm.forward.Len() }

func (bm BiMap[K, V]) Keys() []K { return bm.forward.Keys() }

func (bm BiMap[K, V]) Values() []V { return bm.reverse.Keys() }

// ToMap returns the pairs as a plain key to value map.
// The returned map is a copy, mutating it doesn't affect the BiMap.
func (bm BiMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, bm.forward.Len())
	for k, v := range bm.forward {
		out[k] = v
	}
	return out
}

func (bm BiMap[K, V]) Iter() iter.Seq2[K, V] {
	return bm.forward.Iter()
}
