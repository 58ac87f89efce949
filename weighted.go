package datastruct

import (
	"iter"
	"math"
	"math/rand"
	"time"
)

// WeightedTable holds items tagged with a positive weight,
// and supports selecting one of them at random,
// with probability proportional to its weight.
// The zero value is ready to use.
//
// Items are enumerated in insertion order during selection,
// so a given roll always resolves to the same item for the same table state.
type WeightedTable[T comparable] struct {
	entries []weightedEntry[T]
	index   map[T]int
	total   float64
}

type weightedEntry[T comparable] struct {
	item   T
	weight float64
}

// Add inserts an item with the given weight.
//
// It returns ErrInvalidWeight unless the weight is a finite positive number,
// and ErrConflict when the item is already in the table.
func (wt *WeightedTable[T]) Add(item T, weight float64) error {
	if !isValidWeight(weight) {
		return ErrInvalidWeight.F("weight must be a finite positive number, got %v", weight)
	}
	if wt.index == nil {
		wt.index = make(map[T]int)
	}
	if _, ok := wt.index[item]; ok {
		return ErrConflict.F("item %v is already in the table", item)
	}
	wt.index[item] = len(wt.entries)
	wt.entries = append(wt.entries, weightedEntry[T]{item: item, weight: weight})
	wt.total += weight
	return nil
}

// Update replaces the weight of an item that is already in the table.
//
// It returns ErrNotFound when the item is absent,
// and ErrInvalidWeight unless the new weight is a finite positive number.
func (wt *WeightedTable[T]) Update(item T, weight float64) error {
	if !isValidWeight(weight) {
		return ErrInvalidWeight.F("weight must be a finite positive number, got %v", weight)
	}
	pos, ok := wt.index[item]
	if !ok {
		return ErrNotFound.F("item %v is not in the table", item)
	}
	wt.entries[pos].weight = weight
	wt.recomputeTotal()
	return nil
}

// Delete removes an item from the table and reports whether it was present.
// The removed item can be added again later.
func (wt *WeightedTable[T]) Delete(item T) bool {
	pos, ok := wt.index[item]
	if !ok {
		return false
	}
	wt.entries = append(wt.entries[:pos], wt.entries[pos+1:]...)
	delete(wt.index, item)
	// entries after the removed one shifted down by one
	for i := pos; i < len(wt.entries); i++ {
		wt.index[wt.entries[i].item] = i
	}
	wt.recomputeTotal()
	return true
}

// TotalWeight returns the sum of the weights of the items currently in the table.
// It allows callers to produce their own roll for PickAt from an externally seeded random source.
func (wt WeightedTable[T]) TotalWeight() float64 { return wt.total }

// Pick selects a random item using the package wide random source.
// For a reproducible selection, use PickAt with a roll made from your own seeded source.
func (wt WeightedTable[T]) Pick() (T, error) {
	if len(wt.entries) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return wt.PickAt(pickRandom.Float64() * wt.total)
}

// PickAt resolves a roll taken from the [0, TotalWeight()) range into an item.
//
// Each item occupies a sub-interval of the range with the length of its own weight,
// in insertion order, and the roll selects the sub-interval it falls into.
// A roll equal to TotalWeight() resolves to the last item.
//
// It returns ErrEmpty when the table has no items,
// and ErrInvalidWeight when the roll is negative or greater than TotalWeight().
func (wt WeightedTable[T]) PickAt(roll float64) (T, error) {
	var zero T
	if len(wt.entries) == 0 {
		return zero, ErrEmpty
	}
	if math.IsNaN(roll) || roll < 0 || roll > wt.total {
		return zero, ErrInvalidWeight.F("roll %v is outside of the [0, %v] weight range", roll, wt.total)
	}
	for _, e := range wt.entries {
		roll -= e.weight
		if roll < 0 {
			return e.item, nil
		}
	}
	// the roll was at the upper boundary, or float rounding exhausted the walk
	return wt.entries[len(wt.entries)-1].item, nil
}

// Lookup returns the current weight of an item.
func (wt WeightedTable[T]) Lookup(item T) (float64, bool) {
	pos, ok := wt.index[item]
	if !ok {
		return 0, false
	}
	return wt.entries[pos].weight, true
}

func (wt WeightedTable[T]) Has(item T) bool {
	_, ok := wt.index[item]
	return ok
}

func (wt WeightedTable[T]) Len() int { return len(wt.entries) }

// Items returns the items in insertion order.
func (wt WeightedTable[T]) Items() []T {
	out := make([]T, 0, len(wt.entries))
	for _, e := range wt.entries {
		out = append(out, e.item)
	}
	return out
}

// Iter yields the items and their weight in insertion order.
func (wt WeightedTable[T]) Iter() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		for _, e := range wt.entries {
			if !yield(e.item, e.weight) {
				return
			}
		}
	}
}

// recomputeTotal resets the cached total from the entries,
// so the error of incremental subtraction cannot accumulate across many mutations.
func (wt *WeightedTable[T]) recomputeTotal() {
	var total float64
	for _, e := range wt.entries {
		total += e.weight
	}
	wt.total = total
}

func isValidWeight(weight float64) bool {
	return 0 < weight && !math.IsInf(weight, 1)
}

var pickRandom = rand.New(rand.NewSource(time.Now().Unix()))
