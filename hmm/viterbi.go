package hmm

import "regexp"

// reSkip groups the residue the model cannot emit: decimal numbers and
// runs of ASCII letters and digits stay whole.
var reSkip = regexp.MustCompile(`(\d+\.\d+|[a-zA-Z0-9]+)`)

func isHan(c rune) bool {
	return c >= 0x4E00 && c <= 0x9FA5
}

// Cut segments one unknown buffer and appends the pieces to tokens.
// Contiguous CJK runs are decoded by Viterbi; anything between them is
// split along the skip pattern so that numbers and alphanumeric runs
// survive as single tokens.
func (m *Model) Cut(sentence string, tokens []string) []string {
	var chinese, other []rune
	for _, c := range sentence {
		if isHan(c) {
			if len(other) > 0 {
				tokens = splitOther(string(other), tokens)
				other = other[:0]
			}
			chinese = append(chinese, c)
		} else {
			if len(chinese) > 0 {
				tokens = m.viterbi(chinese, tokens)
				chinese = chinese[:0]
			}
			other = append(other, c)
		}
	}
	if len(chinese) > 0 {
		tokens = m.viterbi(chinese, tokens)
	} else {
		tokens = splitOther(string(other), tokens)
	}
	return tokens
}

// viterbi decodes the BMES tag sequence for a pure-CJK run and appends
// the sliced words to tokens.
func (m *Model) viterbi(runes []rune, tokens []string) []string {
	tags := m.decode(runes)
	n := len(runes)
	begin, next := 0, 0
	for i, tag := range tags {
		switch tag {
		case B:
			begin = i
		case E:
			tokens = append(tokens, string(runes[begin:i+1]))
			next = i + 1
		case S:
			tokens = append(tokens, string(runes[i:i+1]))
			next = i + 1
		}
	}
	if next < n {
		tokens = append(tokens, string(runes[next:]))
	}
	return tokens
}

// decode runs the constrained Viterbi pass and returns one tag per rune.
func (m *Model) decode(runes []rune) []State {
	n := len(runes)
	v := make([][numStates]float64, n)
	back := make([][numStates]State, n)
	for s := State(0); s < numStates; s++ {
		v[0][s] = startProb[s] + m.emitProb(s, runes[0])
	}
	for t := 1; t < n; t++ {
		for s := State(0); s < numStates; s++ {
			emp := m.emitProb(s, runes[t])
			first := true
			for _, prev := range prevStates[s] {
				score := v[t-1][prev] + transProb[prev][s] + emp
				// replace on equal scores: the later predecessor wins
				if first || score >= v[t][s] {
					v[t][s] = score
					back[t][s] = prev
					first = false
				}
			}
		}
	}
	win := E
	if v[n-1][E] < v[n-1][S] {
		win = S
	}
	tags := make([]State, n)
	for t := n - 1; t >= 0; t-- {
		tags[t] = win
		win = back[t][win]
	}
	return tags
}

// splitOther cuts a non-CJK run along the skip pattern.
func splitOther(other string, tokens []string) []string {
	if other == "" {
		return tokens
	}
	offset := 0
	for _, loc := range reSkip.FindAllStringIndex(other, -1) {
		if loc[0] > offset {
			tokens = append(tokens, other[offset:loc[0]])
		}
		tokens = append(tokens, other[loc[0]:loc[1]])
		offset = loc[1]
	}
	if offset < len(other) {
		tokens = append(tokens, other[offset:])
	}
	return tokens
}
