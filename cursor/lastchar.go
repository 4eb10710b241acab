package cursor

// Kind discriminates the states the last-consumed character can be in.
type Kind uint8

const (
	// Unstarted means no consuming read has happened yet.
	Unstarted Kind = iota
	// Char means the last consuming read delivered an ordinary character.
	Char
	// Ended means the last consuming read hit the end of the stream.
	Ended
)

// LastChar is a tagged record of the most recently consumed character.
// Look-ahead never changes it; only consuming reads do.
type LastChar struct {
	Kind Kind
	Rune rune // valid only when Kind == Char
}

func (lc LastChar) isCR() bool { return lc.Kind == Char && lc.Rune == cr }
func (lc LastChar) isLF() bool { return lc.Kind == Char && lc.Rune == lf }

// atLineBoundary reports whether the cursor sits exactly on a line
// boundary: before the first read, right after a terminator, or past
// the end of the stream.
func (lc LastChar) atLineBoundary() bool {
	return lc.Kind != Char || lc.Rune == cr || lc.Rune == lf
}
