package completion

import "unicode"

// Kind describes where the cursor sits relative to the words of a line.
type Kind int

const (
	// InSpace is whitespace between, before or after words.
	InSpace Kind = iota
	// InWord is strictly inside a word.
	InWord
	// LeftEdge is on the first character of a word.
	LeftEdge
	// RightEdge is just past the last character of a word.
	RightEdge
)

func (k Kind) String() string {
	switch k {
	case InWord:
		return "in-word"
	case LeftEdge:
		return "left-edge"
	case RightEdge:
		return "right-edge"
	default:
		return "in-space"
	}
}

// Span is the half-open rune range [Start, End) of a word.
type Span struct {
	Start int
	End   int
}

// Position is the cursor location in word terms.
type Position struct {
	Kind Kind
	// Word is the index of the word the cursor is in or on the edge of. For
	// InSpace it is the closest word to the left, valid only if HasLeft.
	Word int
	// HasLeft is set when an InSpace cursor has a word to its left.
	HasLeft bool
}

// Words splits a line into whitespace delimited words.
func Words(line []rune) []Span {
	var out []Span
	start := -1
	for i, r := range line {
		switch {
		case unicode.IsSpace(r) && start >= 0:
			out = append(out, Span{Start: start, End: i})
			start = -1
		case !unicode.IsSpace(r) && start < 0:
			start = i
		}
	}
	if start >= 0 {
		out = append(out, Span{Start: start, End: len(line)})
	}
	return out
}

// Locate finds the cursor position pos, a rune offset, within line.
func Locate(line []rune, pos int) Position {
	words := Words(line)
	if len(words) == 0 || pos < words[0].Start {
		return Position{Kind: InSpace}
	}

	for i, w := range words {
		switch {
		case pos == w.Start:
			return Position{Kind: LeftEdge, Word: i}
		case pos == w.End:
			return Position{Kind: RightEdge, Word: i}
		case w.Start < pos && pos < w.End:
			return Position{Kind: InWord, Word: i}
		case pos < w.Start:
			return Position{Kind: InSpace, Word: i - 1, HasLeft: true}
		}
	}

	return Position{Kind: InSpace, Word: len(words) - 1, HasLeft: true}
}

// WordBeforeCursor returns the part of the word under the cursor that lies
// to its left, the text a completion extends.
func WordBeforeCursor(line []rune, pos int) []rune {
	if pos > len(line) {
		pos = len(line)
	}
	start := pos
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	return line[start:pos]
}
