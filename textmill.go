// Package textmill provides a fluent API for rendering manual document
// trees as fixed-width plain text.
//
// Basic usage:
//
//	err := textmill.Convert(doc).WriteText(w)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	conv := textmill.Convert(doc).
//	    PageWidth(77).
//	    Encoding(charset.AcornLatin1).
//	    LineEnding(charset.CRLF)
//	err := conv.WriteText(w)
//	for _, m := range conv.Messages() {
//	    log.Println(m)
//	}
//
// For advanced use cases, the lower-level textline package is also
// available.
package textmill

import (
	"io"

	"github.com/textmill/textmill/model"
	"github.com/textmill/textmill/msg"
	"github.com/textmill/textmill/textout"
)

// Converter provides a fluent interface for rendering a document tree.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	doc     *model.Manual
	options renderOptions

	// Reporter used by the most recent terminal operation.
	reporter *msg.Reporter
}

// Convert wraps a document tree in a Converter for fluent configuration.
//
// Example:
//
//	err := textmill.Convert(doc).PageWidth(60).WriteText(w)
func Convert(doc *model.Manual) *Converter {
	return &Converter{
		doc:     doc,
		options: defaultOptions(),
	}
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		doc:     c.doc,
		options: c.options.clone(),
	}
}

// WriteText renders the document as plain text to an already-open sink.
// The sink is left open afterwards. Diagnostics raised while rendering
// are available from Messages once the call returns.
func (c *Converter) WriteText(w io.Writer) error {
	c.reporter = msg.NewReporter(c.options.stream)

	return textout.Render(c.doc, w, textout.Options{
		PageWidth:  c.options.pageWidth,
		Target:     c.options.target,
		LineEnding: c.options.ending,
		Reporter:   c.reporter,
	})
}

// Messages returns the diagnostics collected by the most recent terminal
// operation. It returns nil if none has run.
func (c *Converter) Messages() []msg.Message {
	return c.reporter.Messages()
}

// Errored reports whether the most recent terminal operation raised any
// error-level diagnostics.
func (c *Converter) Errored() bool {
	return c.reporter.Errors()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
