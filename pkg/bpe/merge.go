package bpe

// Merge returns a new sequence where every non-overlapping left-to-right
// occurrence of pair in ids is replaced by idx. A match consumes both
// symbols, so [x, x, x] merged on (x, x) becomes [r, x], never [r, r].
// The input is not modified.
func Merge(ids []int, pair Pair, idx int) []int {
	out := make([]int, 0, len(ids))
	i := 0
	for i < len(ids) {
		if i+1 < len(ids) && ids[i] == pair.First && ids[i+1] == pair.Second {
			out = append(out, idx)
			i += 2
		} else {
			out = append(out, ids[i])
			i++
		}
	}
	return out
}
