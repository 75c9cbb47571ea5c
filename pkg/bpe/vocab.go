package bpe

import (
	"fmt"
	"strings"
)

// Vocabulary maps every token id to the byte string it expands to. Ids
// 0-255 expand to the single corresponding byte; merged ids expand to the
// concatenated expansions of their constituent pair.
type Vocabulary struct {
	tokens [][]byte // indexed by token id
}

// BuildVocab expands a merge table into a vocabulary. Merges are processed
// in ascending id order, so each rule's constituents are already expanded
// when the rule is reached (constituent ids are always smaller than the id
// of the merge that consumes them).
func BuildVocab(merges *MergeTable) *Vocabulary {
	tokens := make([][]byte, NumByteTokens+merges.Len())
	for b := 0; b < NumByteTokens; b++ {
		tokens[b] = []byte{byte(b)}
	}
	for i, p := range merges.Pairs() {
		first, second := tokens[p.First], tokens[p.Second]
		if first == nil || second == nil {
			panic(fmt.Sprintf("bpe: merge %d references unexpanded pair (%d, %d)", i, p.First, p.Second))
		}
		merged := make([]byte, 0, len(first)+len(second))
		merged = append(merged, first...)
		merged = append(merged, second...)
		tokens[NumByteTokens+i] = merged
	}
	return &Vocabulary{tokens: tokens}
}

// Size returns the number of token ids the vocabulary covers.
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// Token returns the byte string for a token id.
func (v *Vocabulary) Token(id int) ([]byte, bool) {
	if id < 0 || id >= len(v.tokens) {
		return nil, false
	}
	return v.tokens[id], true
}

// Decode concatenates the expansions of ids and interprets the result as
// UTF-8 text. Byte spans that do not form valid UTF-8 (possible when a
// merge boundary splits a multi-byte code point) are replaced with the
// Unicode replacement character rather than failing. An id outside the
// vocabulary is a contract violation and returns an error with no output.
func (v *Vocabulary) Decode(ids []int) (string, error) {
	total := 0
	for _, id := range ids {
		if id < 0 || id >= len(v.tokens) {
			return "", fmt.Errorf("token id %d not in vocabulary (size %d)", id, len(v.tokens))
		}
		total += len(v.tokens[id])
	}

	buf := make([]byte, 0, total)
	for _, id := range ids {
		buf = append(buf, v.tokens[id]...)
	}
	return strings.ToValidUTF8(string(buf), "�"), nil
}
