package textline

import (
	"github.com/textmill/textmill/charset"
)

// AutoWidth requests that a column be sized from the space left over
// once all fixed-width columns have been placed.
const AutoWidth = -1

// ColumnFlags select the alignment behaviour of a column.
type ColumnFlags uint8

const (
	// ColumnCenter centres each row within the column.
	ColumnCenter ColumnFlags = 1 << iota

	// ColumnRight aligns each row with the right edge of the column.
	ColumnRight

	// ColumnPreformat preserves leading spaces and wraps only at
	// forced newlines or the column edge.
	ColumnPreformat
)

// lineContext is one nesting level of output: an ordered set of columns
// sharing the span between a left margin and a right boundary. It owns
// its columns exclusively and is destroyed when popped.
type lineContext struct {
	leftMargin int
	pageWidth  int // right boundary
	prepared   bool
	columns    []*column

	// Emission state, valid only while a line is being written.
	position int  // current horizontal write cursor
	complete bool // all columns finished this pass
}

// column is an addressable sub-region of a line, owning a growable text
// buffer and its wrap state.
type column struct {
	parent *lineContext

	flags    ColumnFlags
	margin   int
	reqWidth int // fixed width, or AutoWidth

	// Resolved geometry.
	start int
	width int

	// hanging is the extra left padding, in codepoints, applied to
	// every row after the first.
	hanging int

	buf      []byte
	cursor   int // read position during write-out
	finished bool
	firstRow bool

	// writtenWidth is the widest row rendered since the last reset,
	// used for underlining.
	writtenWidth int

	// blankRows is the number of deliberately blank rows still owed
	// for bottom alignment.
	blankRows int
}

// AddColumn appends a column to the current context, separated from the
// previous column (or the left margin) by the given margin, and
// re-resolves the context's geometry. A resolution failure is reported
// and returned, but columns already added are not rolled back.
func (e *Engine) AddColumn(margin, width int) error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}
	if margin < 0 || (width < 0 && width != AutoWidth) {
		return ErrBadGeometry
	}

	top.columns = append(top.columns, &column{
		parent:   top,
		margin:   margin,
		reqWidth: width,
		firstRow: true,
	})

	return e.resolve(top)
}

// SetColumnFlags sets the alignment mode of a column. A hanging indent
// already present on a column being made centred or right-aligned is
// cleared, since it cannot apply.
func (e *Engine) SetColumnFlags(index int, flags ColumnFlags) error {
	col, err := e.column(index)
	if err != nil {
		return err
	}

	col.flags = flags

	if col.hanging > 0 && flags&(ColumnCenter|ColumnRight) != 0 {
		e.reporter.Warningf("hanging indent cleared from column %d by alignment change", index)
		col.hanging = 0
	}

	return nil
}

// SetColumnWidthToContent fixes a column's requested width to the
// codepoint length of its current buffer, then re-resolves the context.
// This preserves the natural width of fields, such as version numbers,
// that must be rendered verbatim.
func (e *Engine) SetColumnWidthToContent(index int) error {
	col, err := e.column(index)
	if err != nil {
		return err
	}

	col.reqWidth = charset.Length(col.buf)

	return e.resolve(col.parent)
}

// Reset clears every column in the current context ready for a new
// block of text, re-resolves the geometry, and marks the context
// prepared. It may be called any number of times between push and pop.
func (e *Engine) Reset() error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}

	for _, col := range top.columns {
		col.buf = col.buf[:0]
		col.cursor = 0
		col.finished = false
		col.firstRow = true
		col.hanging = 0
		col.writtenWidth = 0
		col.blankRows = 0
	}

	top.prepared = true

	return e.resolve(top)
}

// AddText appends raw UTF-8 text to a column's buffer. No interpretation
// happens here: wrapping is deferred entirely to emission.
func (e *Engine) AddText(index int, text string) error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}
	if !top.prepared {
		return ErrNotPrepared
	}
	if index < 0 || index >= len(top.columns) {
		return ErrNoColumn
	}

	col := top.columns[index]
	col.buf = append(col.buf, text...)

	return nil
}

// SetHangingIndent sets a column's hanging indent from its current
// content: with spaces > 0, the indent is the codepoint width of the
// buffer up to and including the spaces-th space character; with
// spaces == 0 it is the width of the whole buffer. The call is rejected
// if the resulting indent would not fit the column, or if the column is
// centred or right-aligned.
func (e *Engine) SetHangingIndent(index, spaces int) error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}
	if !top.prepared {
		return ErrNotPrepared
	}
	if index < 0 || index >= len(top.columns) {
		return ErrNoColumn
	}

	col := top.columns[index]

	if col.flags&(ColumnCenter|ColumnRight) != 0 {
		e.reporter.Errorf("hanging indent is not possible on a centred or right-aligned column")
		return ErrBadIndent
	}

	indent := 0
	if spaces == 0 {
		indent = charset.Length(col.buf)
	} else {
		cur := charset.NewCursor(col.buf)
		seen := 0
		for {
			r, ok := cur.Next()
			if !ok {
				break
			}
			indent++
			if r == ' ' {
				seen++
				if seen == spaces {
					break
				}
			}
		}
	}

	if indent >= col.width {
		e.reporter.Errorf("hanging indent of %d does not fit a column %d wide", indent, col.width)
		return ErrBadIndent
	}

	col.hanging = indent

	return nil
}

// column looks up a column in the current context by index.
func (e *Engine) column(index int) (*column, error) {
	top := e.top()
	if top == nil {
		return nil, ErrNoContext
	}
	if index < 0 || index >= len(top.columns) {
		return nil, ErrNoColumn
	}
	return top.columns[index], nil
}

// resolve walks the context's columns left to right, fixing each one's
// start position and width. Fixed columns take their requested width;
// automatic columns share the space left over, with the last automatic
// column absorbing any integer-division remainder. Resolution continues
// past failures so that every column ends up with usable geometry; the
// first failure is reported and returned.
func (e *Engine) resolve(ctx *lineContext) error {
	used := ctx.leftMargin
	autoCount := 0

	for _, col := range ctx.columns {
		used += col.margin
		if col.reqWidth == AutoWidth {
			autoCount++
		} else {
			used += col.reqWidth
		}
	}

	free := ctx.pageWidth - used

	pos := ctx.leftMargin
	var firstErr error

	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	for i, col := range ctx.columns {
		pos += col.margin
		col.start = pos

		if col.reqWidth == AutoWidth {
			share := free
			if autoCount > 1 {
				share = free / autoCount
			}
			col.width = share
			free -= share
			autoCount--

			if share <= 0 {
				e.reporter.Errorf("no free space for automatic column %d", i)
				fail(ErrPageOverflow)
			}
		} else {
			col.width = col.reqWidth
		}

		pos += col.width

		if col.start+col.width > ctx.pageWidth {
			e.reporter.Errorf("column %d ends at %d, past the page width %d", i, col.start+col.width, ctx.pageWidth)
			fail(ErrPageOverflow)
		}

		if col.hanging > 0 && col.hanging >= col.width {
			e.reporter.Errorf("hanging indent of %d no longer fits column %d", col.hanging, i)
			col.hanging = 0
			fail(ErrBadIndent)
		}
	}

	return firstErr
}
