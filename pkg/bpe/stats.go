package bpe

// Pair is an ordered pair of adjacent token ids. Order is significant:
// Pair{a, b} and Pair{b, a} are distinct merge candidates.
type Pair struct {
	First  int
	Second int
}

// GetStats counts every adjacent pair in ids. An empty or single-element
// sequence yields an empty map.
func GetStats(ids []int) map[Pair]int {
	counts := make(map[Pair]int)
	for i := 0; i+1 < len(ids); i++ {
		counts[Pair{ids[i], ids[i+1]}]++
	}
	return counts
}

// less orders pairs by First, then Second.
func (p Pair) less(q Pair) bool {
	if p.First != q.First {
		return p.First < q.First
	}
	return p.Second < q.Second
}
