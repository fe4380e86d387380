package dictfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/wenzhuo/jiebago/hmm"
)

// EmissionReader streams HMM emission entries from prob_emit.txt-style
// sources. Records are grouped by state: a line holding a single B, M,
// E or S opens a group, and every following char<TAB>logp line belongs
// to it until the next marker. It implements hmm.EmissionReader.
type EmissionReader struct {
	scanner   *bufio.Scanner
	state     hmm.State
	haveState bool
}

// NewEmissionReader returns a reader over one emission file.
func NewEmissionReader(r io.Reader) *EmissionReader {
	return &EmissionReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next emission entry as (state, char, logP).
// It returns io.EOF when exhausted.
func (r *EmissionReader) Next() (hmm.State, rune, float64, error) {
	for r.scanner.Scan() {
		fields := strings.Split(r.scanner.Text(), "\t")
		if len(fields) == 1 {
			marker := []rune(fields[0])
			if len(marker) != 1 {
				continue
			}
			state, ok := hmm.ParseState(marker[0])
			if !ok {
				tracer().Debugf("skipping unknown emission group marker %q", fields[0])
				continue
			}
			r.state = state
			r.haveState = true
			continue
		}
		if !r.haveState {
			tracer().Debugf("skipping emission line before first group marker")
			continue
		}
		chars := []rune(fields[0])
		if len(chars) != 1 {
			continue
		}
		logP, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			tracer().Debugf("skipping emission line with bad probability %q", fields[1])
			continue
		}
		return r.state, chars[0], logP, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, 0, 0, err
	}
	return 0, 0, 0, io.EOF
}
