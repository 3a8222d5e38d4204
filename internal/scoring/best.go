package scoring

import "strconv"

// bestKey is the fixed store key for the memory game's best score. A single
// value is kept across all difficulties.
const bestKey = "memory.best"

// BestScore caches the persisted best score for the memory game. The store
// is read once at construction; a new record is written through immediately.
// Storage failures are swallowed: a failed read counts as "no best
// recorded" and a failed write is discarded, so a round always completes
// regardless of persistence availability.
type BestScore struct {
	store    Store
	value    int
	recorded bool
}

// LoadBest reads the best score from the store.
func LoadBest(store Store) *BestScore {
	b := &BestScore{store: store}
	raw, ok, err := store.Get(bestKey)
	if err != nil || !ok {
		return b
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return b
	}
	b.value = value
	b.recorded = true
	return b
}

// Value returns the current best score, zero when none is recorded.
func (b *BestScore) Value() int { return b.value }

// Recorded reports whether any best score has ever been saved.
func (b *BestScore) Recorded() bool { return b.recorded }

// Update records score if it beats the current best and reports whether it
// did. The first completed round always sets a record.
func (b *BestScore) Update(score int) bool {
	if b.recorded && score <= b.value {
		return false
	}
	b.value = score
	b.recorded = true
	_ = b.store.Set(bestKey, strconv.Itoa(score))
	return true
}
