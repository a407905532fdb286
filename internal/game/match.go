package game

// TargetSum is the value a selection must add up to exactly to be removed.
const TargetSum = 10

// MatchResult describes the outcome of evaluating a finished selection.
type MatchResult struct {
	Selected []int // ids handed to the evaluator
	Sum      int   // sum of live selected values
	Matched  bool  // Sum == TargetSum
	Removed  []int // ids removed from the store
	Gained   int   // score gained (one point per removed tile)
	Cleared  bool  // the store is empty after removal
}

// SelectionSum adds up the values of the given ids.
// Unknown or removed ids contribute 0.
func SelectionSum(store *TileStore, ids []int) int {
	sum := 0
	for _, id := range ids {
		if t, ok := store.Find(id); ok {
			sum += t.Value
		}
	}
	return sum
}

// Evaluate applies the sum rule to a finished selection. An empty selection
// does nothing. On a match the tiles are removed from the store immediately.
func Evaluate(store *TileStore, ids []int) MatchResult {
	if len(ids) == 0 {
		return MatchResult{}
	}

	res := MatchResult{
		Selected: ids,
		Sum:      SelectionSum(store, ids),
	}
	if res.Sum != TargetSum {
		return res
	}

	res.Matched = true
	res.Removed = store.RemoveAll(ids)
	res.Gained = len(res.Removed)
	res.Cleared = store.IsEmpty()
	return res
}
