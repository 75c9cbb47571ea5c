// Command bpetrain trains a byte-level BPE vocabulary on a corpus file and
// demonstrates the result by encoding and decoding sample texts.
//
// Usage:
//
//	bpetrain [-n merges] [-q] corpus [sample text ...]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ha1tch/bytebpe/pkg/bpe"
)

// targetVocabSize - 256 byte ids leaves 768 merges by default.
const targetVocabSize = 1024

var (
	numMerges = flag.Int("n", targetVocabSize-bpe.NumByteTokens, "number of merges to learn")
	quiet     = flag.Bool("q", false, "quiet operation")
	help      = flag.Bool("h", false, "display this help")
)

// defaultSamples exercises plain ASCII, punctuation-heavy prose, and
// multi-byte UTF-8 (byte-level merges must still round-trip CJK text).
var defaultSamples = []string{
	"hello world",
	"In the dusk, a thin mist hung over the harbour.",
	"She read the letter twice before folding it away.",
	"夜のホームで、彼は古い手紙を読み返していた。",
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "bpetrain: missing corpus argument")
		fmt.Fprintln(os.Stderr, "Try 'bpetrain -h' for more information.")
		os.Exit(1)
	}

	corpusPath := flag.Arg(0)
	data, err := os.ReadFile(corpusPath)
	if err != nil {
		fatal("cannot read '%s': %v", corpusPath, err)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "training: %d bytes, %d merges\n", len(data), *numMerges)
	}

	tok := bpe.TrainTokenizer(data, *numMerges)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "merges: %d, vocab: %d\n", tok.NumMerges(), tok.VocabSize())
	}

	samples := flag.Args()[1:]
	if len(samples) == 0 {
		samples = defaultSamples
	}

	for _, text := range samples {
		ids := tok.Encode(text)
		decoded, err := tok.Decode(ids)
		if err != nil {
			fatal("decode failed: %v", err)
		}

		fmt.Println("----------------------------------------")
		fmt.Printf("text:    %s\n", text)
		fmt.Printf("ids:     %v\n", ids)
		fmt.Printf("ratio:   %.2f\n", compressionRatio(len(text), len(ids)))
		fmt.Printf("decoded: %s\n", decoded)

		if decoded != text {
			fatal("round-trip mismatch for %q", text)
		}
	}
}

// compressionRatio is input bytes per output token.
func compressionRatio(byteLen, tokenCount int) float64 {
	if tokenCount == 0 {
		return 0
	}
	return float64(byteLen) / float64(tokenCount)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: bpetrain [-n merges] [-q] corpus [sample text ...]

Train a byte-level BPE vocabulary on a corpus file, then encode and decode
sample texts with the learned merges, printing token ids and the achieved
compression ratio. Without sample arguments a built-in set is used.

Options:
  -n merges  number of merges to learn (default %d)
  -q         quiet operation (suppress training progress)
  -h         display this help

Examples:
  bpetrain corpus.txt                     Train and run built-in samples
  bpetrain -n 100 corpus.txt "a sample"   Train 100 merges, encode one text
  bpetrain -q corpus.txt                  Progress messages suppressed

`, targetVocabSize-bpe.NumByteTokens)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "bpetrain: "+format+"\n", args...)
	os.Exit(1)
}
