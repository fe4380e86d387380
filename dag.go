package jiebago

// routeStep is one DP cell: the best word end at this position and the
// accumulated log-probability of the path from here to the end.
type routeStep struct {
	end   int
	score float64
}

// buildDAG enumerates, for every start position i, the end indices of
// all lexicon words beginning at i. Positions with no dictionary word
// fall back to the singleton {i}, so every list is non-empty, and the
// probing order keeps each list ascending.
func (d *dictionary) buildDAG(runes []rune) map[int][]int {
	dag := make(map[int][]int)
	n := len(runes)
	i, j := 0, 0
	for i < n {
		hit := d.root.Match(runes, i, j-i+1)
		if hit.IsPrefix() || hit.IsMatch() {
			if hit.IsMatch() {
				dag[i] = append(dag[i], j)
			}
			j++
			if j >= n {
				i++
				j = i
			}
		} else {
			i++
			j = i
		}
	}
	for i = 0; i < n; i++ {
		if _, ok := dag[i]; !ok {
			dag[i] = []int{i}
		}
	}
	return dag
}

// calcRoute runs the right-to-left DP over the DAG. route[i] holds the
// best segmentation of runes[i:]; route[n] is the zero sentinel. A
// candidate replaces the incumbent only on a strictly larger score, so
// ties keep the shortest word.
func (d *dictionary) calcRoute(runes []rune, dag map[int][]int) []routeStep {
	n := len(runes)
	route := make([]routeStep, n+1)
	for i := n - 1; i >= 0; i-- {
		first := true
		for _, x := range dag[i] {
			score := d.logFreq(string(runes[i:x+1])) + route[x+1].score
			if first || score > route[i].score {
				route[i] = routeStep{end: x, score: score}
				first = false
			}
		}
	}
	return route
}
