package spelling

// QWERTY key coordinates on a simplified three-row layout. Adjacency is
// defined as manhattan distance 1: each key's up/down/left/right neighbor.
var keyCoords = map[byte][2]int{
	'q': {0, 0}, 'w': {0, 1}, 'e': {0, 2}, 'r': {0, 3}, 't': {0, 4},
	'y': {0, 5}, 'u': {0, 6}, 'i': {0, 7}, 'o': {0, 8}, 'p': {0, 9},
	'a': {1, 0}, 's': {1, 1}, 'd': {1, 2}, 'f': {1, 3}, 'g': {1, 4},
	'h': {1, 5}, 'j': {1, 6}, 'k': {1, 7}, 'l': {1, 8},
	'z': {2, 0}, 'x': {2, 1}, 'c': {2, 2}, 'v': {2, 3}, 'b': {2, 4},
	'n': {2, 5}, 'm': {2, 6},
}

// unknownKeyDistance is the assumed distance when a character is not on the
// letter rows (digits, punctuation, non-ASCII).
const unknownKeyDistance = 3

// keysAdjacent reports whether a and b are neighboring keys.
func keysAdjacent(a, b byte) bool {
	return keyDistance(a, b) == 1
}

// keyDistance returns the manhattan distance between two keys on the layout.
// Identical characters are distance 0; characters off the letter rows get
// unknownKeyDistance.
func keyDistance(a, b byte) int {
	if a == b {
		return 0
	}
	ca, okA := keyCoords[lowerByte(a)]
	cb, okB := keyCoords[lowerByte(b)]
	if !okA || !okB {
		return unknownKeyDistance
	}
	return absInt(ca[0]-cb[0]) + absInt(ca[1]-cb[1])
}

// keyboardScore converts the average per-position key distance between two
// same-length strings into a closeness score in (0, 1]. Identical strings
// score 1. Strings of different lengths get the neutral 0.5 because
// positions cannot be paired up.
func keyboardScore(a, b string) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.5
	}
	total := 0
	for i := 0; i < len(a); i++ {
		total += keyDistance(a[i], b[i])
	}
	avg := float64(total) / float64(len(a))
	return 1 / (1 + avg)
}

// adjacentVariants returns all strings obtained by replacing one character
// of word with a keyboard neighbor. Only ASCII letter positions produce
// variants.
func adjacentVariants(word string) []string {
	var out []string
	for i := 0; i < len(word); i++ {
		c := lowerByte(word[i])
		coord, ok := keyCoords[c]
		if !ok {
			continue
		}
		for key, kc := range keyCoords {
			if key == c {
				continue
			}
			if absInt(coord[0]-kc[0])+absInt(coord[1]-kc[1]) != 1 {
				continue
			}
			out = append(out, word[:i]+string(key)+word[i+1:])
		}
	}
	return out
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
