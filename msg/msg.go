package msg

import (
	"fmt"
	"io"
)

// Level classifies the severity of a diagnostic message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// String returns a string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return "Message"
	}
}

// Message is a single recorded diagnostic.
type Message struct {
	// Level is the severity of the message.
	Level Level

	// Text is the formatted message text.
	Text string

	// Location identifies the source position the message relates to,
	// or is empty if no location was current when it was reported.
	Location string
}

// String formats the message the way it would appear on a console.
func (m Message) String() string {
	if m.Location != "" {
		return fmt.Sprintf("%s: %s %s", m.Level, m.Text, m.Location)
	}
	return fmt.Sprintf("%s: %s", m.Level, m.Text)
}

// Reporter accumulates diagnostics and tracks whether any error-level
// message has been reported. If constructed with a non-nil writer, each
// message is also streamed to it as it arrives.
type Reporter struct {
	out      io.Writer
	location string
	errored  bool
	messages []Message
}

// NewReporter creates a reporter. The writer may be nil, in which case
// messages are collected but not streamed anywhere.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// SetLocation sets the source location attached to subsequent messages.
func (r *Reporter) SetLocation(file string, line int) {
	if r == nil {
		return
	}
	r.location = fmt.Sprintf("at line %d of '%s'", line, file)
}

// ClearLocation removes any current source location.
func (r *Reporter) ClearLocation() {
	if r == nil {
		return
	}
	r.location = ""
}

// Report records a message at the given level.
func (r *Reporter) Report(level Level, format string, args ...any) {
	if r == nil {
		return
	}

	m := Message{
		Level:    level,
		Text:     fmt.Sprintf(format, args...),
		Location: r.location,
	}
	r.messages = append(r.messages, m)

	if level == LevelError {
		r.errored = true
	}

	if r.out != nil {
		fmt.Fprintln(r.out, m.String())
	}
}

// Infof records an informational message.
func (r *Reporter) Infof(format string, args ...any) {
	r.Report(LevelInfo, format, args...)
}

// Warningf records a warning.
func (r *Reporter) Warningf(format string, args ...any) {
	r.Report(LevelWarning, format, args...)
}

// Errorf records an error-level message and latches the error flag.
func (r *Reporter) Errorf(format string, args ...any) {
	r.Report(LevelError, format, args...)
}

// Errors reports whether any error-level message has been recorded.
func (r *Reporter) Errors() bool {
	return r != nil && r.errored
}

// Messages returns the recorded messages in the order they arrived.
func (r *Reporter) Messages() []Message {
	if r == nil {
		return nil
	}
	return r.messages
}
