// Package charset handles the character-level concerns of text output:
// decoding UTF-8 source text codepoint by codepoint, counting codepoints,
// emitting codepoints in a selected target encoding with '?' substituted
// for anything the target cannot represent, and writing the selected
// line-ending sequence.
//
// The two non-breaking sentinel codepoints (NoBreakSpace and
// NoBreakHyphen) are ordinary data to every other package; they are
// folded to a plain space and hyphen here, at the final emit step only.
package charset
