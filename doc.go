/*
Package jiebago is a dictionary-driven Chinese word segmenter.

Segmentation runs in two stages. Known words are found by building a
directed acyclic graph of every lexicon span over the input and selecting
the maximum-probability path through it with dynamic programming over
log-frequencies. Spans the lexicon does not know are handed to a
character-level hidden Markov model and decoded with a constrained
Viterbi pass (package hmm).

The lexicon lives in a prefix trie (package trie) keyed by runes, with
word log-probabilities kept in a separate frequency table. Dictionary
file formats are parsed by package dictfile and fed in through the
streaming EntryReader interface, so the engine itself never touches the
filesystem.

A Segmenter is immutable after New returns, except for user-dictionary
loads and ResetDict, which take the write side of an internal guard.
Any number of goroutines may segment concurrently.
*/
package jiebago

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'jiebago'
func tracer() tracing.Trace {
	return tracing.Select("jiebago")
}
