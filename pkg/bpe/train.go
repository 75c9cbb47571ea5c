// Package bpe implements a byte-level Byte Pair Encoding tokenizer.
//
// Training learns an ordered table of merge rules from raw bytes; the table
// drives reversible encoding of text to integer token ids and back. Ids 0-255
// are the raw byte values, ids from 256 up are learned merges. MergeTable and
// Vocabulary are immutable once built and safe for concurrent readers.
package bpe

import "fmt"

// NumByteTokens is the number of reserved byte-level token ids. Ids below
// this value denote raw bytes; merge ids are assigned from it upward.
const NumByteTokens = 256

// MergeTable holds the learned merge rules. Each pair maps to the token id
// that replaces it; ids are assigned in strictly increasing order starting
// at NumByteTokens, one per training iteration.
type MergeTable struct {
	rules map[Pair]int
}

// NewMergeTable builds a table from merge pairs listed in learning order:
// pairs[i] is assigned id NumByteTokens+i. It rejects pairs whose components
// are not already defined at the point they appear, since a later expansion
// would have nothing to look up.
func NewMergeTable(pairs []Pair) (*MergeTable, error) {
	rules := make(map[Pair]int, len(pairs))
	for i, p := range pairs {
		idx := NumByteTokens + i
		if p.First < 0 || p.First >= idx || p.Second < 0 || p.Second >= idx {
			return nil, fmt.Errorf("merge %d: pair (%d, %d) references undefined token id", i, p.First, p.Second)
		}
		if _, ok := rules[p]; ok {
			return nil, fmt.Errorf("merge %d: pair (%d, %d) already merged", i, p.First, p.Second)
		}
		rules[p] = idx
	}
	return &MergeTable{rules: rules}, nil
}

// Train learns at most numMerges merge rules from data. Each iteration
// counts adjacent pairs in the current sequence, merges the most frequent
// pair into a fresh id, and repeats on the shortened sequence. Training
// stops early only when fewer than two symbols remain.
//
// Ties on the maximum count go to the smallest pair (First, then Second),
// so training is deterministic across runs.
func Train(data []byte, numMerges int) *MergeTable {
	ids := make([]int, len(data))
	for i, b := range data {
		ids[i] = int(b)
	}

	rules := make(map[Pair]int)
	for m := 0; m < numMerges; m++ {
		stats := GetStats(ids)
		if len(stats) == 0 {
			break
		}
		best := maxPair(stats)
		idx := NumByteTokens + m
		rules[best] = idx
		ids = Merge(ids, best, idx)
	}
	return &MergeTable{rules: rules}
}

// maxPair returns the pair with the highest count, breaking ties toward
// the smallest pair.
func maxPair(stats map[Pair]int) Pair {
	var best Pair
	bestCount := 0
	for p, c := range stats {
		if c > bestCount || (c == bestCount && p.less(best)) {
			best = p
			bestCount = c
		}
	}
	return best
}

// Len returns the number of merge rules in the table.
func (t *MergeTable) Len() int {
	return len(t.rules)
}

// ID returns the token id assigned to pair, if the pair was merged.
func (t *MergeTable) ID(pair Pair) (int, bool) {
	idx, ok := t.rules[pair]
	return idx, ok
}

// Pairs returns the merge pairs in learning order: element i is the pair
// assigned id NumByteTokens+i. The result can be fed back to NewMergeTable
// to reconstruct an equivalent table.
func (t *MergeTable) Pairs() []Pair {
	pairs := make([]Pair, len(t.rules))
	for p, idx := range t.rules {
		pairs[idx-NumByteTokens] = p
	}
	return pairs
}

// Vocab builds the vocabulary derived from this table.
func (t *MergeTable) Vocab() *Vocabulary {
	return BuildVocab(t)
}
