// Package msg collects and reports diagnostic messages raised during a
// conversion run. Collaborating packages report through a Reporter rather
// than returning warnings through every call chain; errors remain ordinary
// Go error values. A nil *Reporter is safe to report to and discards
// everything, so callers never need to nil-check before reporting.
package msg
