package bpe

// Encode converts text to token ids using the learned merges. The sequence
// starts as the raw bytes of the UTF-8 encoding; each round finds the
// adjacent pair with the smallest assigned merge id (the earliest-learned
// rule, reproducing training's merge precedence) and applies it, until no
// adjacent pair remains in the table. Every merge shortens the sequence,
// so the loop terminates.
func Encode(merges *MergeTable, text string) []int {
	ids := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		ids[i] = int(text[i])
	}

	for len(ids) >= 2 {
		var best Pair
		bestID := -1
		for i := 0; i+1 < len(ids); i++ {
			p := Pair{ids[i], ids[i+1]}
			if idx, ok := merges.ID(p); ok && (bestID < 0 || idx < bestID) {
				best = p
				bestID = idx
			}
		}
		if bestID < 0 {
			break
		}
		ids = Merge(ids, best, bestID)
	}
	return ids
}

// Tokenizer bundles a merge table with the vocabulary derived from it, for
// callers that want a single handle for both directions. It is immutable
// and safe for concurrent use.
type Tokenizer struct {
	merges *MergeTable
	vocab  *Vocabulary
}

// TrainTokenizer trains on data and returns a ready-to-use tokenizer.
func TrainTokenizer(data []byte, numMerges int) *Tokenizer {
	merges := Train(data, numMerges)
	return &Tokenizer{merges: merges, vocab: BuildVocab(merges)}
}

// NewTokenizer wraps an existing merge table, building its vocabulary.
func NewTokenizer(merges *MergeTable) *Tokenizer {
	return &Tokenizer{merges: merges, vocab: BuildVocab(merges)}
}

// Encode converts text to token ids.
func (t *Tokenizer) Encode(text string) []int {
	return Encode(t.merges, text)
}

// Decode converts token ids back to text.
func (t *Tokenizer) Decode(ids []int) (string, error) {
	return t.vocab.Decode(ids)
}

// NumMerges returns the number of learned merge rules.
func (t *Tokenizer) NumMerges() int {
	return t.merges.Len()
}

// VocabSize returns the total number of token ids.
func (t *Tokenizer) VocabSize() int {
	return t.vocab.Size()
}

// Merges returns the underlying merge table.
func (t *Tokenizer) Merges() *MergeTable {
	return t.merges
}

// Vocab returns the underlying vocabulary.
func (t *Tokenizer) Vocab() *Vocabulary {
	return t.vocab
}
