package charset

import (
	"unicode/utf8"
)

// Target identifies the byte encoding used for output.
type Target int

const (
	// UTF8 passes codepoints through unmodified.
	UTF8 Target = iota

	// ASCII is plain 7-bit ASCII.
	ASCII

	// AcornLatin1 is the RISC OS Latin 1 8-bit codeset.
	AcornLatin1

	// AcornLatin2 is the RISC OS Latin 2 8-bit codeset.
	AcornLatin2
)

// String returns a string representation of the target.
func (t Target) String() string {
	switch t {
	case UTF8:
		return "UTF-8"
	case ASCII:
		return "ASCII"
	case AcornLatin1:
		return "Acorn Latin 1"
	case AcornLatin2:
		return "Acorn Latin 2"
	default:
		return "Unknown"
	}
}

// LineEnding identifies the byte sequence written for a newline.
type LineEnding int

const (
	// LF is a single Line Feed (RISC OS or Unix).
	LF LineEnding = iota

	// CR is a single Carriage Return.
	CR

	// CRLF is Carriage Return then Line Feed (DOS).
	CRLF

	// LFCR is Line Feed then Carriage Return.
	LFCR
)

// Sequence returns the byte sequence for the line ending.
func (le LineEnding) Sequence() []byte {
	switch le {
	case CR:
		return []byte{'\r'}
	case CRLF:
		return []byte{'\r', '\n'}
	case LFCR:
		return []byte{'\n', '\r'}
	default:
		return []byte{'\n'}
	}
}

// The reserved sentinel codepoints. Text containing them wraps as if
// they were ordinary letters; Writer folds them to plain equivalents
// when the codepoint is finally emitted.
const (
	NoBreakSpace  = '\u00a0'
	NoBreakHyphen = '\u2011'
)

// Cursor is a decoding read position over a UTF-8 buffer. It is a value
// type: a copy scans independently of the original.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor over the given buffer, positioned at the start.
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Next consumes and returns the next codepoint, or false at the end of
// the buffer. Invalid UTF-8 yields one replacement codepoint per byte.
func (c *Cursor) Next() (rune, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	r, size := utf8.DecodeRune(c.buf[c.pos:])
	c.pos += size
	return r, true
}

// Pos returns the current byte offset into the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// SetPos moves the cursor to an offset previously obtained from Pos.
func (c *Cursor) SetPos(pos int) {
	c.pos = pos
}

// Length returns the number of codepoints in a UTF-8 buffer.
func Length(buf []byte) int {
	return utf8.RuneCount(buf)
}

// LengthString returns the number of codepoints in a UTF-8 string.
func LengthString(s string) int {
	return utf8.RuneCountInString(s)
}
