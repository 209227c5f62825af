// Package listnum generates the marker text for list items: bullets for
// unordered lists, and decimal, alphabetic or roman numbers for ordered
// lists, with the style cycling as lists nest. It also predicts the
// maximum marker width for a list of a known length, so that a marker
// column can be sized before any item is written.
package listnum
