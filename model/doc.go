// Package model defines the structured document tree that renderers
// consume: a manual containing chapters, nestable sections, and block
// content (paragraphs and lists) whose text is built from inline spans.
// The model carries no layout information; deciding where text goes on
// the page is entirely the renderer's concern.
package model
