package jiebago

import (
	"errors"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/wenzhuo/jiebago/trie"
)

// EntryReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package dictfile to parse concrete formats and feed
// this API.
type EntryReader interface {
	Next() (word string, freq float64, err error)
}

// ErrNoDictionary is returned when the main dictionary source yields no
// usable entries. A segmenter cannot operate without a lexicon.
var ErrNoDictionary = errors.New("jiebago: main dictionary is empty")

// dictionary couples the lexicon trie with the word frequency table.
//
// Raw frequencies are summed to a total during the main load and every
// stored value becomes ln(freq/total); minFreq, the smallest stored
// value, doubles as the score of unknown spans. User dictionaries are
// normalized against the already-finalized total, so they never shift
// the probabilities of main-dictionary words.
type dictionary struct {
	mu      sync.RWMutex
	root    *trie.Node
	freqs   map[string]float64
	loaded  map[string]bool // user-dict sources, keyed by absolute path
	total   float64
	minFreq float64
}

func newDictionary() *dictionary {
	return &dictionary{
		root:    trie.NewRoot(),
		freqs:   make(map[string]float64),
		loaded:  make(map[string]bool),
		minFreq: math.MaxFloat64,
	}
}

// addWord normalizes word, inserts it into the trie and returns the
// normalized key. An empty or all-space word yields "".
func (d *dictionary) addWord(word string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return "", nil
	}
	if err := d.root.Insert([]rune(key)); err != nil {
		return "", err
	}
	return key, nil
}

// loadMain reads the whole main dictionary and normalizes frequencies.
// Must complete before any segmentation begins.
func (d *dictionary) loadMain(entries EntryReader) error {
	count := 0
	for {
		word, freq, err := entries.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		key, err := d.addWord(word)
		if err != nil {
			return err
		}
		if key == "" {
			continue
		}
		d.total += freq
		d.freqs[key] = freq
		count++
	}
	if count == 0 {
		return ErrNoDictionary
	}
	for word, freq := range d.freqs {
		logp := math.Log(freq / d.total)
		d.freqs[word] = logp
		if logp < d.minFreq {
			d.minFreq = logp
		}
	}
	tracer().Infof("main dict load finished, %d words, total freq %.0f", count, d.total)
	return nil
}

// loadUser merges one user dictionary under the write lock. Frequencies
// are normalized against the main dictionary's total.
func (d *dictionary) loadUser(entries EntryReader) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	count := 0
	for {
		word, freq, err := entries.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		key, err := d.addWord(word)
		if err != nil {
			return count, err
		}
		if key == "" {
			continue
		}
		d.freqs[key] = math.Log(freq / d.total)
		count++
	}
}

// markLoaded records a user-dict source key and reports whether it was
// already present. Loading is idempotent per key.
func (d *dictionary) markLoaded(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded[key] {
		return true
	}
	d.loaded[key] = true
	return false
}

// reset replaces the lexicon with an empty root and clears the
// frequency table. total and minFreq survive so that user dictionaries
// loaded afterwards keep their normalization.
func (d *dictionary) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.root = trie.NewRoot()
	d.freqs = make(map[string]float64)
}

// callers must hold mu

func (d *dictionary) containsWord(word string) bool {
	_, ok := d.freqs[word]
	return ok
}

func (d *dictionary) logFreq(word string) float64 {
	if freq, ok := d.freqs[word]; ok {
		return freq
	}
	return d.minFreq
}
