package datastructcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/datastruct"
)

// BiMap is the behavioral suite of the bidirectional map.
// It asserts that the stored pairs always form a bijection,
// and that every mutation affects both lookup directions atomically.
func BiMap[K comparable, V comparable](mk func(tb testing.TB) *datastruct.BiMap[K, V], opts ...BiMapOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	populate := func(t *testcase.T, bm *datastruct.BiMap[K, V]) map[K]V {
		pairs := map[K]V{}
		var usedValues []V
		t.Random.Repeat(3, 7, func() {
			k := random.Unique(func() K { return c.makeK(t) }, bm.Keys()...)
			v := random.Unique(func() V { return c.makeV(t) }, usedValues...)
			usedValues = append(usedValues, v)
			assert.NoError(t, bm.Insert(k, v))
			pairs[k] = v
		})
		return pairs
	}

	s.Test("a lookup round-trip through both directions is identity", func(t *testcase.T) {
		bm := mk(t)
		pairs := populate(t, bm)
		for k, v := range pairs {
			gotV, err := bm.GetByKey(k)
			assert.NoError(t, err)
			assert.Equal(t, v, gotV)
			gotK, err := bm.GetByValue(gotV)
			assert.NoError(t, err)
			assert.Equal(t, k, gotK)
		}
		assert.Equal(t, len(pairs), bm.Len())
	})

	s.Test("conflicting insert leaves both directions untouched", func(t *testcase.T) {
		bm := mk(t)
		pairs := populate(t, bm)
		og := bm.ToMap()

		var anyK K
		var anyV V
		for k, v := range pairs {
			anyK, anyV = k, v
			break
		}

		newK := random.Unique(func() K { return c.makeK(t) }, bm.Keys()...)
		newV := random.Unique(func() V { return c.makeV(t) }, bm.Values()...)

		assert.ErrorIs(t, datastruct.ErrConflict, bm.Insert(anyK, newV))
		assert.False(t, bm.HasValue(newV),
			"the value of the failed insert must not be registered in the reverse direction")

		assert.ErrorIs(t, datastruct.ErrConflict, bm.Insert(newK, anyV))
		assert.False(t, bm.HasKey(newK),
			"the key of the failed insert must not be registered in the forward direction")

		assert.Equal(t, og, bm.ToMap())
		assert.Equal(t, len(og), bm.Len())
	})

	s.Test("deleting by one side removes the pair from the other side as well", func(t *testcase.T) {
		bm := mk(t)
		pairs := populate(t, bm)

		for k, v := range pairs {
			if t.Random.Bool() {
				gotV, ok := bm.DeleteByKey(k)
				assert.True(t, ok)
				assert.Equal(t, v, gotV)
			} else {
				gotK, ok := bm.DeleteByValue(v)
				assert.True(t, ok)
				assert.Equal(t, k, gotK)
			}
			assert.False(t, bm.HasKey(k))
			assert.False(t, bm.HasValue(v))
		}
		assert.Equal(t, 0, bm.Len())
	})

	s.Test("deleting a missing key or value is a no-op", func(t *testcase.T) {
		bm := mk(t)
		pairs := populate(t, bm)

		_, ok := bm.DeleteByKey(random.Unique(func() K { return c.makeK(t) }, bm.Keys()...))
		assert.False(t, ok)
		_, ok2 := bm.DeleteByValue(random.Unique(func() V { return c.makeV(t) }, bm.Values()...))
		assert.False(t, ok2)
		assert.Equal(t, pairs, bm.ToMap())
	})

	kName := reflectkit.TypeOf[K]().String()
	vName := reflectkit.TypeOf[V]().String()
	return s.AsSuite(fmt.Sprintf("BiMap[%s, %s]", kName, vName))
}

type BiMapOption[K comparable, V comparable] interface {
	option.Option[BiMapConfig[K, V]]
}

type BiMapConfig[K comparable, V comparable] struct {
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

var _ BiMapOption[string, int] = BiMapConfig[string, int]{}

func (c BiMapConfig[K, V]) Configure(o *BiMapConfig[K, V]) {
	o.MakeK = zerokit.Coalesce(c.MakeK, o.MakeK)
	o.MakeV = zerokit.Coalesce(c.MakeV, o.MakeV)
}

func (c BiMapConfig[K, V]) makeK(tb testing.TB) K {
	if c.MakeK != nil {
		return c.MakeK(tb)
	}
	return makeValue[K](tb)
}

func (c BiMapConfig[K, V]) makeV(tb testing.TB) V {
	if c.MakeV != nil {
		return c.MakeV(tb)
	}
	return makeValue[V](tb)
}
