package charset

import (
	"fmt"
	"io"
	"unicode/utf8"

	gdamore "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/textmill/textmill/msg"
)

// asciiSub is the substitute byte some charmap encoders emit in place of
// an unmappable codepoint; the writer folds it to '?'.
const asciiSub = 0x1a

// Writer emits codepoints to a sink in a selected target encoding, and
// newlines in a selected line-ending sequence. The sink is assumed to be
// already open; the writer never closes it.
type Writer struct {
	out      io.Writer
	target   Target
	ending   LineEnding
	encoder  *encoding.Encoder
	reporter *msg.Reporter
	scratch  [utf8.UTFMax]byte
}

// NewWriter creates a writer over an open sink. The reporter may be nil.
func NewWriter(out io.Writer, target Target, ending LineEnding, reporter *msg.Reporter) *Writer {
	w := &Writer{
		out:      out,
		target:   target,
		ending:   ending,
		reporter: reporter,
	}

	switch target {
	case ASCII:
		w.encoder = gdamore.ASCII.NewEncoder()
	case AcornLatin1:
		w.encoder = charmap.ISO8859_1.NewEncoder()
	case AcornLatin2:
		w.encoder = charmap.ISO8859_2.NewEncoder()
	}

	return w
}

// Target returns the selected output encoding.
func (w *Writer) Target() Target {
	return w.target
}

// WriteRune writes one codepoint in the target encoding. The sentinel
// codepoints are folded to plain space and hyphen, and codepoints the
// target cannot represent are written as '?'.
func (w *Writer) WriteRune(r rune) error {
	switch r {
	case NoBreakSpace:
		r = ' '
	case NoBreakHyphen:
		r = '-'
	}

	if w.encoder == nil {
		n := utf8.EncodeRune(w.scratch[:], r)
		return w.write(w.scratch[:n])
	}

	n := utf8.EncodeRune(w.scratch[:], r)
	b, err := w.encoder.Bytes(w.scratch[:n])
	if err != nil || len(b) == 0 || (len(b) == 1 && b[0] == asciiSub) {
		w.reporter.Warningf("character %d (0x%x) is not mapped into selected encoding", r, r)
		b = []byte{'?'}
	}

	return w.write(b)
}

// WriteNewline writes the selected line-ending sequence.
func (w *Writer) WriteNewline() error {
	return w.write(w.ending.Sequence())
}

func (w *Writer) write(b []byte) error {
	if _, err := w.out.Write(b); err != nil {
		return fmt.Errorf("charset: write failed: %w", err)
	}
	return nil
}
