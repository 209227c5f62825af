package textline

import (
	"errors"
	"strings"
	"testing"
)

// write runs a full fill-and-write cycle against a prepared engine.
func write(t *testing.T, eng *Engine, text string, underline, bottomAlign bool) {
	t.Helper()

	if err := eng.AddText(0, text); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.Write(underline, bottomAlign); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
}

func lines(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func TestWrite_WrapsAtSpaces(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, AutoWidth})

	write(t, eng, "hello world foo", false, false)

	if got, want := buf.String(), lines("hello", "world foo"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_HyphenatesUnbreakableText(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 20)
	prepare(t, eng, [2]int{0, 5})

	write(t, eng, "superduper", false, false)

	if got, want := buf.String(), lines("supe-", "rdup-", "er"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_HyphenAtTrueRowBoundary(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 5)
	prepare(t, eng, [2]int{0, AutoWidth})

	// Width 5 against an unbroken run of 8: the hyphen lands at the
	// row edge rather than the text overflowing.
	write(t, eng, "abcdefgh", false, false)

	if got, want := buf.String(), lines("abcd-", "efgh"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_NarrowColumnsBreakHardWithoutHyphen(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, 2})

	write(t, eng, "abcde", false, false)

	if got, want := buf.String(), lines("ab", "cd", "e"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_NoHyphenBeforeAnExistingHyphen(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, 4})

	// The codepoint just past the edge is a hyphen, so the row is cut
	// at the full width with no extra hyphen inserted.
	write(t, eng, "abcd-x", false, false)

	if got, want := buf.String(), lines("abcd", "-x"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_HyphenStaysOnCurrentRow(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 7)
	prepare(t, eng, [2]int{0, AutoWidth})

	write(t, eng, "well-known", false, false)

	if got, want := buf.String(), lines("well-", "known"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_WordEndingExactlyAtEdgeDoesNotHyphenate(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 6)
	prepare(t, eng, [2]int{0, AutoWidth})

	write(t, eng, "across more", false, false)

	if got, want := buf.String(), lines("across", "more"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_ForcedNewlines(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, AutoWidth})

	write(t, eng, "one\ntwo", false, false)

	if got, want := buf.String(), lines("one", "two"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_TrailingForcedNewlineYieldsBlankRow(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, AutoWidth})

	write(t, eng, "one\n", false, false)

	if got, want := buf.String(), lines("one", ""); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_WrapTotality(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 7)
	prepare(t, eng, [2]int{0, AutoWidth})

	// 100 unbreakable codepoints at width 7: 6 consumed per hyphenated
	// row, 16 full rows plus the 4-codepoint remainder.
	write(t, eng, strings.Repeat("x", 100), false, false)

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(rows) != 17 {
		t.Fatalf("Expected 17 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) > 7 {
			t.Errorf("Row %d is %d wide: %q", i, len(row), row)
		}
	}
}

func TestWrite_EmptyContextEmitsOneNewline(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, AutoWidth})

	if err := eng.Write(false, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if buf.String() != "\n" {
		t.Errorf("Expected a single newline, got %q", buf.String())
	}
}

func TestWrite_HangingIndent(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 12)
	prepare(t, eng, [2]int{0, AutoWidth})

	if err := eng.AddText(0, "Item: more text that wraps across lines"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.SetHangingIndent(0, 1); err != nil {
		t.Fatalf("SetHangingIndent failed: %v", err)
	}
	if err := eng.Write(false, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := lines(
		"Item: more",
		"      text",
		"      that",
		"      wraps",
		"      across",
		"      lines",
	)
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_CentredColumn(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 11)
	prepare(t, eng, [2]int{0, AutoWidth})

	if err := eng.SetColumnFlags(0, ColumnCenter); err != nil {
		t.Fatalf("SetColumnFlags failed: %v", err)
	}
	write(t, eng, "abc", false, false)

	if got, want := buf.String(), "    abc\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_RightAlignedColumn(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, AutoWidth})

	if err := eng.SetColumnFlags(0, ColumnRight); err != nil {
		t.Fatalf("SetColumnFlags failed: %v", err)
	}
	write(t, eng, "abc", false, false)

	if got, want := buf.String(), "       abc\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_PreformattedColumnKeepsSpaces(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 20)
	prepare(t, eng, [2]int{0, AutoWidth})

	if err := eng.SetColumnFlags(0, ColumnPreformat); err != nil {
		t.Fatalf("SetColumnFlags failed: %v", err)
	}
	write(t, eng, "  indented code", false, false)

	if got, want := buf.String(), "  indented code\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_PreformattedColumnBreaksHard(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 4)
	prepare(t, eng, [2]int{0, AutoWidth})

	if err := eng.SetColumnFlags(0, ColumnPreformat); err != nil {
		t.Fatalf("SetColumnFlags failed: %v", err)
	}
	write(t, eng, "ab cdef", false, false)

	if got, want := buf.String(), lines("ab c", "def"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_TwoColumnsShareOneLine(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 20)
	prepare(t, eng, [2]int{0, AutoWidth}, [2]int{0, AutoWidth})

	if err := eng.AddText(0, "left"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.AddText(1, "right"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.Write(false, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if got, want := buf.String(), "left      right\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_BottomAlignment(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 20)
	prepare(t, eng, [2]int{0, 9}, [2]int{1, 10})

	if err := eng.AddText(0, "top\nrow"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.AddText(1, "alpha\nbeta\ngamma\ndelta\nepsilon"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.Write(false, true); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Natural row counts 2 and 5: the short column owes 3 leading
	// blank rows so both finish on the same final row.
	want := lines(
		"          alpha",
		"          beta",
		"          gamma",
		"top       delta",
		"row       epsilon",
	)
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_Underline(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 20)
	prepare(t, eng, [2]int{0, AutoWidth})

	write(t, eng, "Title", true, false)

	if got, want := buf.String(), lines("Title", "-----"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_UnderlineSpansWidestRowPerColumn(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 20)
	prepare(t, eng, [2]int{0, 5}, [2]int{0, 10})

	if err := eng.AddText(0, "ab"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.AddText(1, "xyz q"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if err := eng.Write(true, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := lines(
		"ab   xyz q",
		"--   -----",
	)
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_SentinelsDoNotBreakAndFoldOnOutput(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, 5})

	// A non-breaking space is not a breakpoint, so the run hyphenates
	// as one word; it emerges as a plain space.
	write(t, eng, "ab\u00a0cdef", false, false)

	if got, want := buf.String(), lines("ab c-", "def"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrite_NonBreakingHyphenFoldsToPlainHyphen(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)
	prepare(t, eng, [2]int{0, AutoWidth})

	write(t, eng, "x\u2011y", false, false)

	if got, want := buf.String(), "x-y\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriteRuleoff(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)

	if err := eng.WriteRuleoff('='); !errors.Is(err, ErrNoContext) {
		t.Errorf("Expected ErrNoContext, got %v", err)
	}

	if err := eng.PushAbsolute(2); err != nil {
		t.Fatalf("PushAbsolute failed: %v", err)
	}
	if err := eng.WriteRuleoff('='); err != nil {
		t.Fatalf("WriteRuleoff failed: %v", err)
	}

	if got, want := buf.String(), "  ========\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriteNewline(t *testing.T) {
	eng, buf, _ := newTestEngine(t, 10)

	if err := eng.WriteNewline(); err != nil {
		t.Fatalf("WriteNewline failed: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("Expected a newline, got %q", buf.String())
	}
}

// failWriter fails on every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWrite_SinkErrorsPropagate(t *testing.T) {
	eng, err := New(failWriter{}, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := eng.PushAbsolute(0); err != nil {
		t.Fatalf("PushAbsolute failed: %v", err)
	}
	if err := eng.AddColumn(0, AutoWidth); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}
	if err := eng.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if err := eng.AddText(0, "hello"); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}

	if err := eng.Write(false, false); err == nil {
		t.Error("Expected a write error from the failing sink")
	}
}
