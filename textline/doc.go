// Package textline composes fixed-width, monospaced output lines from
// abstract "write this text into this region" instructions. It provides
// a stack of nested line contexts, each owning an ordered set of columns
// sharing the horizontal span between a left margin and the page width.
// A renderer pushes a context, adds columns, then repeatedly resets the
// context, fills columns with raw text, and calls Write; the compositor
// word-wraps each column independently, falling back to hyphenation when
// a row contains no usable breakpoint, and emits physical rows until
// every column is finished.
//
// Column widths may be fixed or automatic: automatic columns share the
// space left over once the fixed columns are placed, with the last
// automatic column absorbing any integer-division remainder. Columns can
// be left aligned (the default), centred, right aligned, or preformatted,
// carry a hanging indent applied to every row after the first, and be
// bottom-aligned against their siblings so that all columns on a line
// finish on the same physical row.
//
// The engine writes bytes to an already-open sink through a
// charset.Writer; it never opens, closes, or otherwise manages files.
package textline
