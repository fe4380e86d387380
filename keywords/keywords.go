// Package keywords ranks the words of a document by TF-IDF over the
// segmenter's output.
//
// Term frequencies come from segmenting the document; single-character
// words and stop words are excluded. Inverse document frequencies are
// loaded from a corpus-derived table, with the table's median standing
// in for words the corpus never saw.
package keywords

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	ptrie "github.com/derekparker/trie"
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/wenzhuo/jiebago"
)

// defaultTopN bounds the result size when the caller passes no limit.
const defaultTopN = 10

// tfScale is the term-frequency scaling factor of the reference corpus.
const tfScale = 0.1

// Keyword is one extracted keyword with its TF-IDF weight.
type Keyword struct {
	Name  string
	TFIDF float64
}

func (k Keyword) String() string {
	return fmt.Sprintf("%s:%g", k.Name, k.TFIDF)
}

// Analyzer extracts keywords from documents. Immutable after
// NewAnalyzer; safe for concurrent use.
type Analyzer struct {
	seg       *jiebago.Segmenter
	stopWords *ptrie.Trie
	idf       map[string]float64
	idfMedian float64
}

// NewAnalyzer builds an analyzer over seg. stop holds one stop word per
// line; idf holds word<SP>idf lines. Malformed idf lines are skipped.
func NewAnalyzer(seg *jiebago.Segmenter, stop io.Reader, idf io.Reader) (*Analyzer, error) {
	a := &Analyzer{
		seg:       seg,
		stopWords: ptrie.New(),
		idf:       make(map[string]float64),
	}
	scanner := bufio.NewScanner(stop)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			a.stopWords.Add(word, nil)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("keywords: stop words: %w", err)
	}
	scanner = bufio.NewScanner(idf)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		a.idf[fields[0]] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("keywords: idf table: %w", err)
	}
	values := make([]float64, 0, len(a.idf))
	for _, v := range a.idf {
		values = append(values, v)
	}
	sort.Float64s(values)
	if len(values) > 0 {
		a.idfMedian = values[len(values)/2]
	}
	return a, nil
}

func (a *Analyzer) isStopWord(word string) bool {
	_, found := a.stopWords.Find(word)
	return found
}

// termFrequencies segments content and counts the surviving words.
func (a *Analyzer) termFrequencies(content string) map[string]float64 {
	tf := make(map[string]float64)
	if content == "" {
		return tf
	}
	counts := make(map[string]int)
	wordSum := 0
	for _, word := range a.seg.SentenceProcess(content) {
		if utf8.RuneCountInString(word) <= 1 || a.isStopWord(word) {
			continue
		}
		wordSum++
		counts[word]++
	}
	for word, count := range counts {
		tf[word] = float64(count) * tfScale / float64(wordSum)
	}
	return tf
}

// Analyze returns the topN keywords of content ordered by descending
// TF-IDF. topN <= 0 selects a default of 10.
func (a *Analyzer) Analyze(content string, topN int) []Keyword {
	if topN <= 0 {
		topN = defaultTopN
	}
	// bounded min-heap: the smallest of the current top N sits on top
	heap := binaryheap.NewWith(func(x, y interface{}) int {
		kx, ky := x.(Keyword), y.(Keyword)
		switch {
		case kx.TFIDF < ky.TFIDF:
			return -1
		case kx.TFIDF > ky.TFIDF:
			return 1
		}
		return 0
	})
	for word, tf := range a.termFrequencies(content) {
		idf, ok := a.idf[word]
		if !ok {
			idf = a.idfMedian
		}
		heap.Push(Keyword{Name: word, TFIDF: tf * idf})
		if heap.Size() > topN {
			heap.Pop()
		}
	}
	result := make([]Keyword, heap.Size())
	for i := heap.Size() - 1; i >= 0; i-- {
		v, _ := heap.Pop()
		result[i] = v.(Keyword)
	}
	return result
}
