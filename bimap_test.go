package datastruct_test

import (
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/datastructcontract"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func ExampleBiMap() {
	var bm datastruct.BiMap[string, string]
	_ = bm.Insert("Cameron", "Cam")
	_ = bm.Insert("Tommy", "Tom")

	bm.GetByKey("Cameron") // "Cam"
	bm.GetByValue("Tom")   // "Tommy"
}

func TestBiMap(t *testing.T) {
	s := testcase.NewSpec(t)

	bm := let.Var(s, func(t *testcase.T) *datastruct.BiMap[string, string] {
		return &datastruct.BiMap[string, string]{}
	})

	s.Test("a pair can be looked up from both directions", func(t *testcase.T) {
		assert.NoError(t, bm.Get(t).Insert("Cameron", "Cam"))
		assert.NoError(t, bm.Get(t).Insert("Tommy", "Tom"))

		value, err := bm.Get(t).GetByKey("Cameron")
		assert.NoError(t, err)
		assert.Equal(t, "Cam", value)

		key, err := bm.Get(t).GetByValue("Tom")
		assert.NoError(t, err)
		assert.Equal(t, "Tommy", key)

		assert.Equal(t, 2, bm.Get(t).Len())
	})

	s.Test("getting a missing key or value is a not found error", func(t *testcase.T) {
		_, err := bm.Get(t).GetByKey(t.Random.String())
		assert.ErrorIs(t, err, datastruct.ErrNotFound)

		_, err = bm.Get(t).GetByValue(t.Random.String())
		assert.ErrorIs(t, err, datastruct.ErrNotFound)
	})

	s.Test("lookup reports absence without an error", func(t *testcase.T) {
		_, ok := bm.Get(t).LookupByKey(t.Random.String())
		assert.False(t, ok)
		_, ok2 := bm.Get(t).LookupByValue(t.Random.String())
		assert.False(t, ok2)

		assert.NoError(t, bm.Get(t).Insert("key", "value"))

		value, ok := bm.Get(t).LookupByKey("key")
		assert.True(t, ok)
		assert.Equal(t, "value", value)

		key, ok := bm.Get(t).LookupByValue("value")
		assert.True(t, ok)
		assert.Equal(t, "key", key)
	})

	s.When("a pair is already stored", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			assert.NoError(t, bm.Get(t).Insert("A", "X"))
		})

		s.Test("inserting with an already used value is a conflict", func(t *testcase.T) {
			err := bm.Get(t).Insert("B", "X")
			assert.ErrorIs(t, err, datastruct.ErrConflict)

			assert.Equal(t, map[string]string{"A": "X"}, bm.Get(t).ToMap(),
				"the failed insert must not leave any trace in the map")
			assert.False(t, bm.Get(t).HasKey("B"))
		})

		s.Test("inserting with an already used key is a conflict", func(t *testcase.T) {
			err := bm.Get(t).Insert("A", "Y")
			assert.ErrorIs(t, err, datastruct.ErrConflict)

			assert.Equal(t, map[string]string{"A": "X"}, bm.Get(t).ToMap())
			assert.False(t, bm.Get(t).HasValue("Y"))
		})

		s.Test("deleting by key removes the pair from the value direction too", func(t *testcase.T) {
			value, ok := bm.Get(t).DeleteByKey("A")
			assert.True(t, ok)
			assert.Equal(t, "X", value)

			assert.False(t, bm.Get(t).HasKey("A"))
			assert.False(t, bm.Get(t).HasValue("X"))
			assert.Equal(t, 0, bm.Get(t).Len())
		})

		s.Test("deleting by value removes the pair from the key direction too", func(t *testcase.T) {
			key, ok := bm.Get(t).DeleteByValue("X")
			assert.True(t, ok)
			assert.Equal(t, "A", key)

			assert.False(t, bm.Get(t).HasKey("A"))
			assert.False(t, bm.Get(t).HasValue("X"))
		})

		s.Test("a deleted key and value can be paired again", func(t *testcase.T) {
			_, ok := bm.Get(t).DeleteByKey("A")
			assert.True(t, ok)

			assert.NoError(t, bm.Get(t).Insert("A", "X"))
			value, err := bm.Get(t).GetByKey("A")
			assert.NoError(t, err)
			assert.Equal(t, "X", value)
		})
	})

	s.Test("deleting a missing key or value is a no-op", func(t *testcase.T) {
		_, ok := bm.Get(t).DeleteByKey(t.Random.String())
		assert.False(t, ok)
		_, ok2 := bm.Get(t).DeleteByValue(t.Random.String())
		assert.False(t, ok2)
	})

	s.Test("mutating the map returned by ToMap doesn't affect the bimap", func(t *testcase.T) {
		assert.NoError(t, bm.Get(t).Insert("A", "X"))

		out := bm.Get(t).ToMap()
		out["B"] = "Y"
		delete(out, "A")

		assert.True(t, bm.Get(t).HasKey("A"))
		assert.False(t, bm.Get(t).HasKey("B"))
		assert.Equal(t, 1, bm.Get(t).Len())
	})

	s.Test("keys and values enumerate the two sides of the stored pairs", func(t *testcase.T) {
		pairs := map[string]string{}
		t.Random.Repeat(3, 7, func() {
			k := t.Random.HexN(5)
			v := t.Random.HexN(8)
			if bm.Get(t).HasKey(k) || bm.Get(t).HasValue(v) {
				return
			}
			assert.NoError(t, bm.Get(t).Insert(k, v))
			pairs[k] = v
		})

		var expKeys []string
		var expValues []string
		for k, v := range pairs {
			expKeys = append(expKeys, k)
			expValues = append(expValues, v)
		}
		assert.ContainsExactly(t, expKeys, bm.Get(t).Keys())
		assert.ContainsExactly(t, expValues, bm.Get(t).Values())
		assert.Equal(t, pairs, bm.Get(t).ToMap())
	})

	t.Run("implements the bidirectional map behavior", datastructcontract.BiMap(func(tb testing.TB) *datastruct.BiMap[string, int] {
		return &datastruct.BiMap[string, int]{}
	}).Test)
}
