// Package dictfile parses the dictionary and model file formats of the
// segmenter and feeds them into the base package through its streaming
// reader interfaces.
//
// The main dictionary is UTF-8 text, one entry per line:
//
//	word<WS>freq[<WS>tag]
//
// where <WS> is a run of tabs or spaces, freq is a positive decimal
// number, and a trailing part-of-speech tag is ignored. Lines with
// fewer than two fields are skipped. User dictionaries use the same
// shape but the frequency is optional and defaults to 3.
package dictfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'jiebago.dict'
func tracer() tracing.Trace {
	return tracing.Select("jiebago.dict")
}

// defaultUserFreq is assumed for user-dictionary lines that carry no
// frequency field.
const defaultUserFreq = 3.0

// Reader streams dictionary entries from line-oriented source files.
// It implements jiebago.EntryReader.
type Reader struct {
	scanner *bufio.Scanner
	user    bool
}

// NewReader returns a reader for main-dictionary lines.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// NewUserReader returns a reader for user-dictionary lines, where the
// frequency field is optional.
func NewUserReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), user: true}
}

// Next returns the next entry as (word, freq).
// It returns io.EOF when exhausted. Malformed lines are skipped.
func (r *Reader) Next() (string, float64, error) {
	for r.scanner.Scan() {
		fields := strings.Fields(r.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if r.user {
			freq := defaultUserFreq
			if len(fields) >= 2 {
				parsed, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					tracer().Debugf("skipping user dict line with bad frequency %q", fields[1])
					continue
				}
				freq = parsed
			}
			return fields[0], freq, nil
		}
		if len(fields) < 2 {
			continue
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			tracer().Debugf("skipping dict line with bad frequency %q", fields[1])
			continue
		}
		return fields[0], freq, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, err
	}
	return "", 0, io.EOF
}
