package jiebago

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wenzhuo/jiebago/hmm"
)

// SegMode selects the token stream Process emits.
type SegMode int

const (
	// SearchMode emits each word of the best segmentation exactly once.
	SearchMode SegMode = iota
	// IndexMode additionally emits every lexicon bigram and trigram
	// contained in words longer than two and three characters, before
	// the full word. Overlaps repeat; this feeds index builders, not
	// readers.
	IndexMode
)

// Segmenter is the segmentation engine. The lexicon, frequency table
// and HMM model are loaded once by New and shared read-only by all
// calls; user-dictionary loads serialize against in-flight segmentation
// through an internal guard.
type Segmenter struct {
	dict  *dictionary
	model *hmm.Model
}

// New builds a Segmenter from a main dictionary stream and an emission
// stream. The two sources load concurrently. A missing main dictionary
// is fatal; a nil or failing emission source merely disables the HMM
// fallback, leaving unknown multi-character spans to surface as their
// constituent characters.
func New(entries EntryReader, emissions hmm.EmissionReader) (*Segmenter, error) {
	seg := &Segmenter{dict: newDictionary()}
	var g errgroup.Group
	g.Go(func() error {
		return seg.dict.loadMain(entries)
	})
	if emissions != nil {
		g.Go(func() error {
			model, err := hmm.Load(emissions)
			if err != nil {
				tracer().Errorf("emission model load failure, HMM fallback disabled: %v", err)
				return nil
			}
			seg.model = model
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("jiebago: %w", err)
	}
	return seg, nil
}

// LoadUserEntries merges a user dictionary into the lexicon. key
// identifies the source (normally its absolute path); a key that was
// already loaded is skipped, an empty key always loads. Safe to call
// while other goroutines segment.
func (seg *Segmenter) LoadUserEntries(key string, entries EntryReader) error {
	if key != "" && seg.dict.markLoaded(key) {
		tracer().Debugf("user dict %s already loaded", key)
		return nil
	}
	count, err := seg.dict.loadUser(entries)
	if err != nil {
		return fmt.Errorf("jiebago: user dict %s: %w", key, err)
	}
	tracer().Infof("user dict %s load finished, %d words", key, count)
	return nil
}

// ResetDict replaces the lexicon with an empty root and clears the
// frequency table, letting callers run purely on user dictionaries.
// The HMM model is unaffected.
func (seg *Segmenter) ResetDict() {
	seg.dict.reset()
}

// Process segments a paragraph into tokens with rune offsets.
//
// Characters are normalized and accumulated into runs of segmentable
// characters; each run goes through the DAG, the DP route and, for
// unknown multi-character spans, the HMM. Every character outside such
// runs is emitted as a single token of its own, unnormalized.
func (seg *Segmenter) Process(paragraph string, mode SegMode) []Token {
	seg.dict.mu.RLock()
	defer seg.dict.mu.RUnlock()

	runes := []rune(paragraph)
	tokens := make([]Token, 0, len(runes)/2+1)
	var acc []rune
	offset := 0
	for i, ch := range runes {
		c := regularize(ch)
		if isCC(c) {
			acc = append(acc, c)
			continue
		}
		if len(acc) > 0 {
			tokens = seg.flush(tokens, acc, offset, mode)
			acc = acc[:0]
			offset = i
		}
		tokens = append(tokens, Token{Word: string(ch), Start: offset, End: offset + 1})
		offset++
	}
	if len(acc) > 0 {
		tokens = seg.flush(tokens, acc, offset, mode)
	}
	return tokens
}

// flush segments one accumulated run and appends its tokens.
func (seg *Segmenter) flush(tokens []Token, acc []rune, offset int, mode SegMode) []Token {
	words := seg.sentenceProcess(acc)
	if mode == SearchMode {
		for _, word := range words {
			n := len([]rune(word))
			tokens = append(tokens, Token{Word: word, Start: offset, End: offset + n})
			offset += n
		}
		return tokens
	}
	for _, word := range words {
		wr := []rune(word)
		n := len(wr)
		if n > 2 {
			for j := 0; j < n-1; j++ {
				gram2 := string(wr[j : j+2])
				if seg.dict.containsWord(gram2) {
					tokens = append(tokens, Token{Word: gram2, Start: offset + j, End: offset + j + 2})
				}
			}
		}
		if n > 3 {
			for j := 0; j < n-2; j++ {
				gram3 := string(wr[j : j+3])
				if seg.dict.containsWord(gram3) {
					tokens = append(tokens, Token{Word: gram3, Start: offset + j, End: offset + j + 3})
				}
			}
		}
		tokens = append(tokens, Token{Word: word, Start: offset, End: offset + n})
		offset += n
	}
	return tokens
}

// SentenceProcess segments a single already-normalized buffer and
// returns the plain word list. This is the entry point for keyword
// extraction and similar callers that do not need offsets.
func (seg *Segmenter) SentenceProcess(sentence string) []string {
	seg.dict.mu.RLock()
	defer seg.dict.mu.RUnlock()
	return seg.sentenceProcess([]rune(sentence))
}

// sentenceProcess runs DAG → route → HMM-on-unknowns for one buffer.
// Consecutive route singletons are buffered: a buffered run that forms
// a known word (or a single character) is emitted as-is, anything
// longer goes to the HMM. Callers hold the dictionary read lock.
func (seg *Segmenter) sentenceProcess(runes []rune) []string {
	n := len(runes)
	dag := seg.dict.buildDAG(runes)
	route := seg.dict.calcRoute(runes, dag)

	tokens := make([]string, 0, n/2+1)
	var buf []rune
	x := 0
	for x < n {
		y := route[x].end + 1
		word := runes[x:y]
		if y-x == 1 {
			buf = append(buf, word...)
		} else {
			if len(buf) > 0 {
				tokens = seg.cutUnknown(tokens, buf)
				buf = buf[:0]
			}
			tokens = append(tokens, string(word))
		}
		x = y
	}
	if len(buf) > 0 {
		tokens = seg.cutUnknown(tokens, buf)
	}
	return tokens
}

// cutUnknown resolves a run the route reduced to singletons.
func (seg *Segmenter) cutUnknown(tokens []string, buf []rune) []string {
	if len(buf) == 1 {
		return append(tokens, string(buf))
	}
	if seg.dict.containsWord(string(buf)) {
		return append(tokens, string(buf))
	}
	if seg.model == nil {
		for _, c := range buf {
			tokens = append(tokens, string(c))
		}
		return tokens
	}
	return seg.model.Cut(string(buf), tokens)
}
