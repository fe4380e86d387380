// Package hmm decodes out-of-vocabulary CJK spans with a four-state
// hidden Markov model over the BMES tag inventory.
//
// Start and transition log-probabilities are fixed constants from the
// model training run; only the emission table is loaded at runtime,
// through the streaming EmissionReader interface. A constrained Viterbi
// pass produces one tag per character and words are sliced at E and S
// boundaries.
package hmm

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'jiebago.hmm'
func tracer() tracing.Trace {
	return tracing.Select("jiebago.hmm")
}

// State is a BMES tag: word Begin, Middle, End, or Single-character word.
type State uint8

const (
	B State = iota
	M
	E
	S
	numStates
)

var stateNames = [numStates]byte{'B', 'M', 'E', 'S'}

func (s State) String() string {
	if s >= numStates {
		return "?"
	}
	return string(stateNames[s])
}

// ParseState maps a tag character to its State.
func ParseState(c rune) (State, bool) {
	switch c {
	case 'B':
		return B, true
	case 'M':
		return M, true
	case 'E':
		return E, true
	case 'S':
		return S, true
	}
	return 0, false
}

// MinLogProb stands in for ln(0) wherever the model has no entry:
// absent emissions, forbidden transitions, and the two illegal start
// states.
const MinLogProb = -3.14e100

// prevStates constrains the trellis: only these predecessors are legal
// for each state.
var prevStates = [numStates][2]State{
	B: {E, S},
	M: {M, B},
	E: {B, M},
	S: {S, E},
}

var startProb = [numStates]float64{
	B: -0.26268660809250016,
	M: MinLogProb,
	E: MinLogProb,
	S: -1.4652633398537678,
}

var transProb = buildTrans()

func buildTrans() (t [numStates][numStates]float64) {
	for from := range t {
		for to := range t[from] {
			t[from][to] = MinLogProb
		}
	}
	t[B][E] = -0.5108
	t[B][M] = -0.9163
	t[E][B] = -0.5897
	t[E][S] = -0.8085
	t[M][E] = -0.3334
	t[M][M] = -1.2604
	t[S][B] = -0.7212
	t[S][S] = -0.6659
	return t
}

// EmissionReader yields emission entries one-by-one as (state, char,
// log-probability) triples. It should return io.EOF when exhausted.
type EmissionReader interface {
	Next() (state State, char rune, logP float64, err error)
}

// Model holds the emission table. Immutable after Load; shared
// read-only by all decoding calls.
type Model struct {
	emit [numStates]map[rune]float64
}

// Load builds a model from an emission stream.
func Load(emissions EmissionReader) (*Model, error) {
	m := &Model{}
	for i := range m.emit {
		m.emit[i] = make(map[rune]float64)
	}
	count := 0
	for {
		state, char, logP, err := emissions.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		m.emit[state][char] = logP
		count++
	}
	tracer().Infof("emission model load finished, %d entries", count)
	return m, nil
}

func (m *Model) emitProb(s State, c rune) float64 {
	if p, ok := m.emit[s][c]; ok {
		return p
	}
	return MinLogProb
}
