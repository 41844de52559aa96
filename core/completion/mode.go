package completion

// Mode selects the kind of candidates offered.
type Mode int

const (
	// ModeNone offers nothing.
	ModeNone Mode = iota
	// ModeFilename offers paths relative to the working directory.
	ModeFilename
)

func (m Mode) String() string {
	if m == ModeFilename {
		return "filename"
	}
	return "none"
}

// ForPosition chooses the completion mode for a cursor position. Only the
// command name, word zero, goes without completion.
func ForPosition(p Position) Mode {
	switch p.Kind {
	case InWord, LeftEdge, RightEdge:
		if p.Word >= 1 {
			return ModeFilename
		}
	case InSpace:
		if p.HasLeft {
			return ModeFilename
		}
	}
	return ModeNone
}

// ModeFor chooses the completion mode for the cursor at rune offset pos.
func ModeFor(line []rune, pos int) Mode {
	return ForPosition(Locate(line, pos))
}
