package model

// SpanKind represents the type of an inline span
type SpanKind int

const (
	SpanKindUnknown SpanKind = iota
	SpanKindText
	SpanKindEmphasis
	SpanKindEntity
)

func (sk SpanKind) String() string {
	switch sk {
	case SpanKindText:
		return "Text"
	case SpanKindEmphasis:
		return "Emphasis"
	case SpanKindEntity:
		return "Entity"
	default:
		return "Unknown"
	}
}

// Span is the interface for inline content within a block or title
type Span interface {
	SpanKind() SpanKind
}

// Spans is an ordered sequence of inline spans
type Spans []Span

// Text is a run of plain text
type Text string

func (t Text) SpanKind() SpanKind { return SpanKindText }

// Emphasis wraps inline content in light or strong emphasis
type Emphasis struct {
	Strong  bool
	Content Spans
}

func (e *Emphasis) SpanKind() SpanKind { return SpanKindEmphasis }

// Entity is a named special character
type Entity int

const (
	EntityUnknown Entity = iota
	EntityNBSP
	EntityAmp
	EntityLSquo
	EntityRSquo
	EntityQuot
	EntityLDquo
	EntityRDquo
	EntityMinus
	EntityNDash
	EntityMDash
	EntityTimes
)

func (e Entity) SpanKind() SpanKind { return SpanKindEntity }

func (e Entity) String() string {
	switch e {
	case EntityNBSP:
		return "nbsp"
	case EntityAmp:
		return "amp"
	case EntityLSquo:
		return "lsquo"
	case EntityRSquo:
		return "rsquo"
	case EntityQuot:
		return "quot"
	case EntityLDquo:
		return "ldquo"
	case EntityRDquo:
		return "rdquo"
	case EntityMinus:
		return "minus"
	case EntityNDash:
		return "ndash"
	case EntityMDash:
		return "mdash"
	case EntityTimes:
		return "times"
	default:
		return "unknown"
	}
}

// Plain is a convenience constructor for a span list holding one text run.
func Plain(text string) Spans {
	return Spans{Text(text)}
}
