package chunker

import "strings"

// MaxBlockBytes bounds the UTF-8 size of one block sent to the summarizer.
const MaxBlockBytes = 65536

// skippableChars matches SRT structure: index lines, timestamp lines, and
// blank lines consist only of these characters. This is a heuristic — a
// spoken line made purely of digits and punctuation is dropped too.
const skippableChars = " 0123456789.:,->"

// Blocks splits subtitle text into ordered, size-bounded groups of prose
// lines. Structural lines are filtered out first; the remaining lines are
// packed so a block's joined byte size stays within MaxBlockBytes, except
// that a single oversized line still forms its own block rather than being
// dropped or split. Joining all blocks in order reconstructs the filtered
// transcript. No qualifying lines yields nil.
func Blocks(text string) [][]string {
	var blocks [][]string
	var current []string
	size := 0

	for _, line := range strings.Split(text, "\n") {
		if !isProse(line) {
			continue
		}

		lineSize := len(line)
		if len(current) > 0 && size+1+lineSize > MaxBlockBytes {
			blocks = append(blocks, current)
			current = nil
			size = 0
		}
		if len(current) > 0 {
			size++ // joining newline
		}
		current = append(current, line)
		size += lineSize
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

// Join renders one block back into the text handed to the summarizer.
func Join(block []string) string {
	return strings.Join(block, "\n")
}

func isProse(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.ContainsFunc(trimmed, func(r rune) bool {
		return !strings.ContainsRune(skippableChars, r)
	})
}
