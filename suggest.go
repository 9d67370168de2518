// suggest.go — did-you-mean hints for unrecognized command names.
//
// Quality-of-life for diagnostics only; nothing here affects evaluation
// semantics. A suggestion is offered when a known name is within edit
// distance 2 of the (lower-cased) unknown name.
package dronescript

const maxSuggestDistance = 2

// SuggestName returns the closest known name within the distance bound, or
// "" when nothing is close enough. Ties go to the earlier name in the slice
// (KnownCommands is sorted, so the result is deterministic).
func SuggestName(name string, known []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, k := range known {
		if d := editDistance(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// editDistance is plain Levenshtein over bytes, single-row DP.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = minInt(row[j]+1, minInt(row[j-1]+1, prev+cost))
			prev = cur
		}
	}
	return row[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
