package prompt

import "strings"

// separators tried in order when looking for a chunk boundary. The final
// empty string forces a hard split if nothing better is found.
var separators = []string{". ", "! ", "? ", "\n", " ", ""}

// SplitChunks splits text into pieces of at most maxChars, preferring
// sentence boundaries near the middle so no chunk ends mid-thought.
// Text at or under the limit comes back as a single chunk.
func SplitChunks(text string, maxChars int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if maxChars <= 0 || len(text) <= maxChars {
		return []string{text}
	}

	mid := len(text) / 2
	pos := mid
	for _, sep := range separators {
		if sep == "" {
			pos = mid
			break
		}
		if i := strings.LastIndex(text[:mid], sep); i >= 0 {
			candidate := i + len(sep)
			// Reject boundaries that would leave a tiny fragment.
			if candidate > maxChars/4 {
				pos = candidate
				break
			}
		}
	}

	left := SplitChunks(text[:pos], maxChars)
	right := SplitChunks(text[pos:], maxChars)
	return append(left, right...)
}
