package editor

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// UTF16Len returns the length of s in UTF-16 code units, which is how the
// editor measures columns.
func UTF16Len(s string) int {
	count := 0
	for _, r := range s {
		if r >= 0x10000 {
			count += 2 // Surrogate pair
		} else {
			count++
		}
	}
	return count
}

// utf16ToByteOffset converts a UTF-16 offset to a byte offset within s.
// Offsets past the end of s clamp to len(s).
func utf16ToByteOffset(s string, utf16Off int) int {
	if utf16Off <= 0 {
		return 0
	}

	utf16Count := 0
	for i, r := range s {
		if utf16Count >= utf16Off {
			return i
		}
		if r >= 0x10000 {
			utf16Count += 2
		} else {
			utf16Count++
		}
	}
	return len(s)
}

// splitLines splits content on '\n', preserving empty lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// wordSpans returns the byte spans of the words on a line. The line is first
// cut at Unicode word boundaries; each segment is then split at runes that
// cannot be part of an identifier, since segmentation keeps "a.b" or "don't"
// together.
func wordSpans(line string) [][2]int {
	var spans [][2]int

	offset := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var segment string
		segment, rest, state = uniseg.FirstWordInString(rest, state)

		start := -1
		for i, r := range segment {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				spans = append(spans, [2]int{offset + start, offset + i})
				start = -1
			}
		}
		if start >= 0 {
			spans = append(spans, [2]int{offset + start, offset + len(segment)})
		}

		offset += len(segment)
	}

	return spans
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.M, r)
}
