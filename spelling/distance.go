package spelling

// Typo-aware edit costs: insertions and deletions are penalized slightly
// above unit cost, while substituting a key for its keyboard neighbor is
// discounted. Adjacent-key typos therefore surface with a lower effective
// distance than arbitrary substitutions.
const (
	insertCost      = 1.2
	deleteCost      = 1.2
	adjacentSubCost = 0.8
	otherSubCost    = 1.0
)

// weightedDistance computes the edit distance between a and b under the
// typo-aware cost model using the standard dynamic-programming table.
func weightedDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	if a == "" {
		return float64(len(b)) * insertCost
	}
	if b == "" {
		return float64(len(a)) * deleteCost
	}

	prev := make([]float64, len(b)+1)
	curr := make([]float64, len(b)+1)
	for j := range prev {
		prev[j] = float64(j) * insertCost
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = float64(i) * deleteCost
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub += substitutionCost(a[i-1], b[j-1])
			}
			del := prev[j] + deleteCost
			ins := curr[j-1] + insertCost
			curr[j] = minFloat(sub, del, ins)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// substitutionCost discounts substitutions between neighboring keys.
func substitutionCost(a, b byte) float64 {
	if keysAdjacent(a, b) {
		return adjacentSubCost
	}
	return otherSubCost
}

func minFloat(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
