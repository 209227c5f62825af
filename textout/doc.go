// Package textout renders a manual tree as fixed-width plain text.
//
// The renderer walks the document model and drives a textline.Engine:
// the manual title becomes a ruled banner, chapter and section headings
// are numbered and underlined, paragraphs wrap within the nesting
// indent, and lists are laid out as a marker column beside the entry
// text. The output encoding and line-ending sequence are passed through
// to the engine untouched.
package textout
