package textline

import "errors"

// Structural errors: the call could never succeed in the current engine
// state, regardless of geometry.
var (
	// ErrNoContext is returned when an operation needs an active line
	// context and the stack is empty.
	ErrNoContext = errors.New("textline: no active line context")

	// ErrNotPrepared is returned when a column is written to, or a
	// write is attempted, before the owning context has been reset.
	ErrNotPrepared = errors.New("textline: line context has not been reset")

	// ErrNoColumn is returned when a column index does not exist in
	// the current context.
	ErrNoColumn = errors.New("textline: no such column")
)

// Layout errors: the requested geometry cannot be honoured.
var (
	// ErrPageOverflow is returned when the resolved columns extend
	// beyond the page width.
	ErrPageOverflow = errors.New("textline: columns exceed the page width")

	// ErrBadIndent is returned when a hanging indent does not fit
	// inside its column, or is requested on a centred or right-aligned
	// column.
	ErrBadIndent = errors.New("textline: hanging indent does not fit the column")

	// ErrBadGeometry is returned for page widths, margins or column
	// widths that are invalid before resolution is even attempted.
	ErrBadGeometry = errors.New("textline: invalid geometry")
)
