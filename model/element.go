package model

// BlockKind represents the type of a block-level element
type BlockKind int

const (
	BlockKindUnknown BlockKind = iota
	BlockKindSection
	BlockKindParagraph
	BlockKindList
)

func (bk BlockKind) String() string {
	switch bk {
	case BlockKindSection:
		return "Section"
	case BlockKindParagraph:
		return "Paragraph"
	case BlockKindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Block is the interface for all block-level elements
type Block interface {
	Kind() BlockKind
}

// Manual is the root of a document tree
type Manual struct {
	Title    Spans
	Chapters []*Chapter
}

// Chapter represents a top-level division of a manual
type Chapter struct {
	Title    Spans
	Sections []*Section
}

// Section represents a titled group of blocks; sections nest by
// appearing among their parent's blocks
type Section struct {
	Title  Spans
	Blocks []Block
}

func (s *Section) Kind() BlockKind { return BlockKindSection }

// Paragraph represents a paragraph of running text
type Paragraph struct {
	Content Spans
}

func (p *Paragraph) Kind() BlockKind { return BlockKindParagraph }

// List represents an ordered or unordered list
type List struct {
	Ordered bool
	Items   []*ListItem
}

func (l *List) Kind() BlockKind { return BlockKindList }

// ListItem represents a single list entry; a nested list may follow
// the item's own text
type ListItem struct {
	Content Spans
	Nested  *List
}
