package textmill

import (
	"io"

	"github.com/textmill/textmill/charset"
)

// renderOptions holds configuration for text rendering.
type renderOptions struct {
	// Page geometry
	pageWidth int // 0 selects the renderer's default

	// Output byte format
	target charset.Target
	ending charset.LineEnding

	// Diagnostic streaming
	stream io.Writer // nil means collect only
}

// defaultOptions returns the default rendering options.
func defaultOptions() renderOptions {
	return renderOptions{
		pageWidth: 0,
		target:    charset.UTF8,
		ending:    charset.LF,
		stream:    nil,
	}
}

// clone creates a copy of renderOptions.
func (o renderOptions) clone() renderOptions {
	return renderOptions{
		pageWidth: o.pageWidth,
		target:    o.target,
		ending:    o.ending,
		stream:    o.stream,
	}
}

// PageWidth sets the output width in characters. The default is 77.
func (c *Converter) PageWidth(width int) *Converter {
	newConv := c.clone()
	newConv.options.pageWidth = width
	return newConv
}

// Encoding selects the output byte encoding. The default is UTF-8.
func (c *Converter) Encoding(target charset.Target) *Converter {
	newConv := c.clone()
	newConv.options.target = target
	return newConv
}

// LineEnding selects the newline sequence. The default is LF.
func (c *Converter) LineEnding(ending charset.LineEnding) *Converter {
	newConv := c.clone()
	newConv.options.ending = ending
	return newConv
}

// StreamMessages echoes diagnostics to the given writer as they are
// raised, in addition to collecting them for Messages.
func (c *Converter) StreamMessages(w io.Writer) *Converter {
	newConv := c.clone()
	newConv.options.stream = w
	return newConv
}
