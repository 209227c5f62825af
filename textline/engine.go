package textline

import (
	"io"

	"github.com/textmill/textmill/charset"
	"github.com/textmill/textmill/msg"
)

// Engine owns the context stack and the output sink for one output file.
// All operations are synchronous: each either completes or fails
// immediately, and nothing is retried. The engine never opens or closes
// the sink itself.
type Engine struct {
	out       *charset.Writer
	pageWidth int
	stack     []*lineContext
	reporter  *msg.Reporter
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	target   charset.Target
	ending   charset.LineEnding
	reporter *msg.Reporter
}

// WithTarget selects the output byte encoding. The default is UTF-8.
func WithTarget(t charset.Target) Option {
	return func(c *engineConfig) { c.target = t }
}

// WithLineEnding selects the newline sequence. The default is LF.
func WithLineEnding(le charset.LineEnding) Option {
	return func(c *engineConfig) { c.ending = le }
}

// WithReporter supplies the reporter that receives non-fatal layout
// diagnostics. A nil reporter discards them.
func WithReporter(r *msg.Reporter) Option {
	return func(c *engineConfig) { c.reporter = r }
}

// New creates an engine writing to an already-open sink with the given
// page width in characters.
func New(sink io.Writer, pageWidth int, opts ...Option) (*Engine, error) {
	if sink == nil || pageWidth <= 0 {
		return nil, ErrBadGeometry
	}

	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		out:       charset.NewWriter(sink, cfg.target, cfg.ending, cfg.reporter),
		pageWidth: pageWidth,
		reporter:  cfg.reporter,
	}, nil
}

// Close ends the engine's use of the sink. Contexts still on the stack
// indicate an unbalanced push/pop sequence in the caller and are
// reported before being discarded. The sink itself is left open.
func (e *Engine) Close() error {
	if len(e.stack) > 0 {
		e.reporter.Warningf("%d line contexts still pushed at close", len(e.stack))
		e.stack = nil
	}
	return nil
}

// PageWidth returns the page width the engine was opened with.
func (e *Engine) PageWidth() int {
	return e.pageWidth
}

// top returns the current top-of-stack context, or nil.
func (e *Engine) top() *lineContext {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

// PushAbsolute pushes a context whose left margin is set relative to the
// page origin and whose right boundary is the page width. Pushing inside
// the current context's margin is legal but suspicious, so it is
// reported as a diagnostic.
func (e *Engine) PushAbsolute(inset int) error {
	if inset < 0 || inset >= e.pageWidth {
		return ErrBadGeometry
	}

	if top := e.top(); top != nil && inset < top.leftMargin {
		e.reporter.Warningf("context inset %d is left of the current margin %d", inset, top.leftMargin)
	}

	e.stack = append(e.stack, &lineContext{
		leftMargin: inset,
		pageWidth:  e.pageWidth,
	})

	return nil
}

// PushRelative pushes a context inset from the current one: the new left
// margin is the current left margin plus left, and the new right
// boundary is the current right boundary minus right.
func (e *Engine) PushRelative(left, right int) error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}

	return e.pushSpan(top.leftMargin+left, top.pageWidth-right)
}

// PushRelativeToColumn pushes a context anchored to the resolved start
// of a column in the current context rather than to its left margin.
func (e *Engine) PushRelativeToColumn(index, left, right int) error {
	top := e.top()
	if top == nil {
		return ErrNoContext
	}
	if index < 0 || index >= len(top.columns) {
		return ErrNoColumn
	}

	return e.pushSpan(top.columns[index].start+left, top.pageWidth-right)
}

func (e *Engine) pushSpan(leftMargin, pageWidth int) error {
	if leftMargin < 0 || leftMargin >= pageWidth {
		return ErrBadGeometry
	}

	e.stack = append(e.stack, &lineContext{
		leftMargin: leftMargin,
		pageWidth:  pageWidth,
	})

	return nil
}

// Pop removes and discards the top context. It returns false if the
// stack is empty.
func (e *Engine) Pop() bool {
	if len(e.stack) == 0 {
		return false
	}
	e.stack = e.stack[:len(e.stack)-1]
	return true
}

// IsPrepared reports whether there is a current context which has been
// reset and is ready to accept text.
func (e *Engine) IsPrepared() bool {
	top := e.top()
	return top != nil && top.prepared
}

// HasContent reports whether any column in the current context holds
// text from the current reset.
func (e *Engine) HasContent() bool {
	top := e.top()
	if top == nil {
		return false
	}
	for _, col := range top.columns {
		if len(col.buf) > 0 {
			return true
		}
	}
	return false
}
