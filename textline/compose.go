package textline

import (
	"github.com/textmill/textmill/charset"
)

// composeMode selects whether a compositor pass writes to the sink or
// only advances the column's read cursor. Both modes share the same
// breakpoint decisions so that sizing and emission cannot drift apart.
type composeMode int

const (
	modeTrial composeMode = iota
	modeReal
)

// Write composes and emits the current context's content as physical
// rows, looping until every column reports finished. With underline set,
// one extra row of dashes is drawn under each column's widest rendered
// row. With bottomAlign set, shorter columns are padded with leading
// blank rows so that all columns finish on the same final row.
func (e *Engine) Write(underline, bottomAlign bool) error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}
	if !top.prepared {
		return ErrNotPrepared
	}

	if bottomAlign {
		e.alignBottoms(top)
	}

	for {
		top.complete = true
		if err := e.writeLine(top); err != nil {
			return err
		}
		if top.complete {
			break
		}
	}

	if underline {
		return e.writeUnderline(top)
	}

	return nil
}

// writeLine emits one physical row: one compositor pass over every
// column, then a newline. Columns owing blank rows for bottom alignment
// contribute nothing this row and keep their text for a later pass.
func (e *Engine) writeLine(ctx *lineContext) error {
	ctx.position = 0

	for _, col := range ctx.columns {
		if col.finished {
			continue
		}
		if col.blankRows > 0 {
			col.blankRows--
			ctx.complete = false
			continue
		}
		if err := e.composeRow(ctx, col, modeReal); err != nil {
			return err
		}
	}

	return e.out.WriteNewline()
}

// alignBottoms sizes every column with trial compositor passes, rewinds
// them, and assigns each the number of blank rows needed to make all
// columns finish together.
func (e *Engine) alignBottoms(ctx *lineContext) {
	counts := make([]int, len(ctx.columns))
	maxRows := 0

	for i, col := range ctx.columns {
		for !col.finished {
			// Trial passes write nothing and cannot fail.
			_ = e.composeRow(ctx, col, modeTrial)
			counts[i]++
		}
		if counts[i] > maxRows {
			maxRows = counts[i]
		}
	}

	for i, col := range ctx.columns {
		col.cursor = 0
		col.finished = false
		col.firstRow = true
		col.blankRows = maxRows - counts[i]
	}
}

// composeRow runs the breakpoint search for one column and one physical
// row, then consumes the chosen text: emitting it when the mode is real,
// silently when the mode is trial. The decision sequence:
//
//  1. The row's available width is the column width, less the hanging
//     indent on every row after the first.
//  2. Codepoints are scanned up to the available width, or to a forced
//     newline or the end of the text, remembering the last usable
//     breakpoint. A space breaks before itself, a hyphen after itself,
//     and a space opening a fresh row is consumed without counting.
//  3. At the end of the text the row takes everything scanned; at a
//     forced newline it takes everything before it and the newline is
//     consumed unrendered. If no breakpoint was seen and text remains,
//     the row is cut at the width, one codepoint short with a trailing
//     hyphen unless the width is under three or a hyphen follows anyway.
func (e *Engine) composeRow(ctx *lineContext, col *column, mode composeMode) error {
	available := col.width
	if !col.firstRow {
		available -= col.hanging
	}
	if available <= 0 {
		col.finished = true
		return nil
	}

	preformat := col.flags&ColumnPreformat != 0

	cur := charset.NewCursor(col.buf)
	cur.SetPos(col.cursor)
	rowStart := col.cursor

	count := 0
	breakpoint := 0
	haveBreak := false
	var terminated, newline, hyphenate bool
	var next rune
	var more bool

	for {
		before := cur.Pos()
		r, ok := cur.Next()
		if !ok {
			terminated = true
			break
		}
		if r == '\n' {
			newline = true
			break
		}
		if count == available {
			// The row is full, but a space sitting exactly one past
			// the edge still ends it cleanly; the space is left for
			// the next row's trim.
			if !preformat && r == ' ' {
				breakpoint = count
				haveBreak = true
			} else {
				next, more = r, true
			}
			cur.SetPos(before)
			break
		}

		count++

		if preformat {
			continue
		}

		switch r {
		case ' ':
			if count == 1 {
				// A space opening a fresh row is left-trimmed.
				count = 0
				rowStart = cur.Pos()
				continue
			}
			breakpoint = count - 1
			haveBreak = true
		case '-':
			breakpoint = count
			haveBreak = true
		}
	}

	switch {
	case terminated, newline:
		breakpoint = count
	case !haveBreak:
		if preformat || (more && next == '-') || available < 3 {
			breakpoint = available
		} else {
			breakpoint = available - 1
			hyphenate = true
		}
	}

	rendered := breakpoint
	if hyphenate {
		rendered++
	}
	if rendered > col.writtenWidth {
		col.writtenWidth = rendered
	}

	if mode == modeReal && rendered > 0 {
		if err := e.pad(ctx, col.start); err != nil {
			return err
		}

		switch {
		case col.flags&ColumnRight != 0:
			if err := e.pad(ctx, col.start+col.width-breakpoint); err != nil {
				return err
			}
		case col.flags&ColumnCenter != 0:
			if err := e.pad(ctx, ctx.position+(col.width-breakpoint)/2); err != nil {
				return err
			}
		default:
			// Left and preformatted rows start at the hanging
			// indent on continuation rows.
			if err := e.pad(ctx, col.start+(col.width-available)); err != nil {
				return err
			}
		}
	}

	// Stream the chosen codepoints and advance the read cursor past
	// them. Trial mode takes the same walk without writing.
	out := charset.NewCursor(col.buf)
	out.SetPos(rowStart)

	for i := 0; i < breakpoint; i++ {
		r, ok := out.Next()
		if !ok {
			break
		}
		if mode == modeReal {
			if err := e.out.WriteRune(r); err != nil {
				return err
			}
			ctx.position++
		}
	}

	if hyphenate && mode == modeReal {
		if err := e.out.WriteRune('-'); err != nil {
			return err
		}
		ctx.position++
	}

	col.cursor = out.Pos()

	if newline {
		if r, ok := out.Next(); ok && r == '\n' {
			col.cursor = out.Pos()
		}
	}

	col.firstRow = false

	if terminated {
		col.finished = true
	} else {
		ctx.complete = false
	}

	return nil
}

// writeUnderline draws one row of dashes spanning each column's widest
// rendered row. Columns that rendered nothing are skipped.
func (e *Engine) writeUnderline(ctx *lineContext) error {
	ctx.position = 0

	for _, col := range ctx.columns {
		if col.writtenWidth == 0 {
			continue
		}
		if err := e.pad(ctx, col.start); err != nil {
			return err
		}
		for i := 0; i < col.writtenWidth; i++ {
			if err := e.out.WriteRune('-'); err != nil {
				return err
			}
			ctx.position++
		}
	}

	return e.out.WriteNewline()
}

// WriteRuleoff draws a horizontal rule: spaces from the page origin to
// the current context's left margin, then the given codepoint repeated
// to the page width, then a newline.
func (e *Engine) WriteRuleoff(r rune) error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}

	top.position = 0
	if err := e.pad(top, top.leftMargin); err != nil {
		return err
	}

	for top.position < top.pageWidth {
		if err := e.out.WriteRune(r); err != nil {
			return err
		}
		top.position++
	}

	return e.out.WriteNewline()
}

// WriteNewline emits the selected line-ending sequence.
func (e *Engine) WriteNewline() error {
	return e.out.WriteNewline()
}

// pad writes spaces until the context's write cursor reaches the target
// position. A target at or behind the cursor writes nothing.
func (e *Engine) pad(ctx *lineContext, to int) error {
	for ctx.position < to {
		if err := e.out.WriteRune(' '); err != nil {
			return err
		}
		ctx.position++
	}
	return nil
}
