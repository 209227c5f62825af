package textout

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/textmill/textmill/charset"
	"github.com/textmill/textmill/listnum"
	"github.com/textmill/textmill/model"
	"github.com/textmill/textmill/msg"
	"github.com/textmill/textmill/textline"
)

const (
	// defaultPageWidth matches the classic 77-character manual page.
	defaultPageWidth = 77

	// blockIndent is the number of characters each nesting level of
	// sections is inset by.
	blockIndent = 2

	// maxSectionIndent limits how far section nesting can push the
	// text to the right.
	maxSectionIndent = 10
)

// The bullet texts assigned to unordered lists, cycling by nesting level.
var bullets = []string{"*", "+", "-"}

// ErrNoDocument is returned when Render is given a nil manual.
var ErrNoDocument = errors.New("textout: no document to render")

// Options control the rendered output.
type Options struct {
	// PageWidth is the output width in characters. Zero selects the
	// default of 77.
	PageWidth int

	// Target is the output byte encoding.
	Target charset.Target

	// LineEnding is the newline sequence.
	LineEnding charset.LineEnding

	// Reporter receives rendering diagnostics. It may be nil.
	Reporter *msg.Reporter
}

type renderer struct {
	eng      *textline.Engine
	reporter *msg.Reporter
}

// Render writes a manual to an already-open sink as plain text. The
// sink is left open afterwards.
func Render(doc *model.Manual, sink io.Writer, opts Options) error {
	if doc == nil {
		return ErrNoDocument
	}

	width := opts.PageWidth
	if width == 0 {
		width = defaultPageWidth
	}

	eng, err := textline.New(sink, width,
		textline.WithTarget(opts.Target),
		textline.WithLineEnding(opts.LineEnding),
		textline.WithReporter(opts.Reporter))
	if err != nil {
		return err
	}

	r := &renderer{eng: eng, reporter: opts.Reporter}

	if err := r.writeTitle(doc.Title); err != nil {
		return err
	}

	for i, chapter := range doc.Chapters {
		if err := r.writeChapter(chapter, strconv.Itoa(i+1)); err != nil {
			return err
		}
	}

	return eng.Close()
}

// writeTitle draws the manual title as a centred line between two
// ruleoffs spanning the full page.
func (r *renderer) writeTitle(title model.Spans) error {
	if len(title) == 0 {
		return nil
	}

	if err := r.eng.PushAbsolute(0); err != nil {
		return err
	}
	defer r.eng.Pop()

	if err := r.eng.AddColumn(0, textline.AutoWidth); err != nil {
		return err
	}
	if err := r.eng.SetColumnFlags(0, textline.ColumnCenter); err != nil {
		return err
	}
	if err := r.eng.Reset(); err != nil {
		return err
	}

	if err := r.eng.WriteRuleoff('='); err != nil {
		return err
	}
	if err := r.addSpans(0, title); err != nil {
		return err
	}
	if err := r.eng.Write(false, false); err != nil {
		return err
	}

	return r.eng.WriteRuleoff('=')
}

func (r *renderer) writeChapter(chapter *model.Chapter, number string) error {
	if chapter == nil {
		return nil
	}

	if err := r.eng.WriteNewline(); err != nil {
		return err
	}
	if err := r.eng.WriteNewline(); err != nil {
		return err
	}

	if err := r.writeHeading(chapter.Title, number, 0); err != nil {
		return err
	}

	for i, section := range chapter.Sections {
		child := number + "." + strconv.Itoa(i+1)
		if err := r.writeSection(section, child, blockIndent); err != nil {
			return err
		}
	}

	return nil
}

func (r *renderer) writeSection(section *model.Section, number string, indent int) error {
	if section == nil {
		return nil
	}

	if indent > maxSectionIndent {
		r.reporter.Warningf("section %s is nested too deeply, holding the indent at %d", number, maxSectionIndent)
		indent = maxSectionIndent
	}

	if len(section.Title) > 0 {
		if err := r.eng.WriteNewline(); err != nil {
			return err
		}
		if err := r.writeHeading(section.Title, number, indent); err != nil {
			return err
		}
	}

	if err := r.eng.PushAbsolute(indent); err != nil {
		return err
	}
	defer r.eng.Pop()

	if err := r.eng.AddColumn(0, textline.AutoWidth); err != nil {
		return err
	}

	sections := 0

	for _, block := range section.Blocks {
		switch b := block.(type) {
		case *model.Section:
			sections++
			child := number + "." + strconv.Itoa(sections)
			if err := r.writeSection(b, child, indent+blockIndent); err != nil {
				return err
			}

		case *model.Paragraph:
			if err := r.eng.Reset(); err != nil {
				return err
			}
			if err := r.eng.WriteNewline(); err != nil {
				return err
			}
			if err := r.addSpans(0, b.Content); err != nil {
				return err
			}
			if err := r.eng.Write(false, false); err != nil {
				return err
			}

		case *model.List:
			if err := r.writeList(b, 0, 0); err != nil {
				return err
			}

		default:
			r.reporter.Warningf("unexpected %v block in section %s", block.Kind(), number)
		}
	}

	return nil
}

// writeHeading writes a numbered, underlined heading at the given indent.
func (r *renderer) writeHeading(title model.Spans, number string, indent int) error {
	if len(title) == 0 {
		return nil
	}

	if err := r.eng.PushAbsolute(indent); err != nil {
		return err
	}
	defer r.eng.Pop()

	if err := r.eng.AddColumn(0, textline.AutoWidth); err != nil {
		return err
	}
	if err := r.eng.Reset(); err != nil {
		return err
	}

	if number != "" {
		if err := r.eng.AddText(0, number+" "); err != nil {
			return err
		}
	}
	if err := r.addSpans(0, title); err != nil {
		return err
	}

	return r.eng.Write(true, false)
}

// writeList lays a list out as a marker column beside an automatic text
// column, anchored to the given column of the current context so that
// nested lists indent under their parent entry's text.
func (r *renderer) writeList(list *model.List, anchor, level int) error {
	if list == nil || len(list.Items) == 0 {
		return nil
	}

	var markers *listnum.List
	var err error

	if list.Ordered {
		markers, err = listnum.Ordered(len(list.Items), level)
	} else {
		markers, err = listnum.Unordered(bullets, level)
	}
	if err != nil {
		return err
	}

	if err := r.eng.PushRelativeToColumn(anchor, 0, 0); err != nil {
		return err
	}
	defer r.eng.Pop()

	if err := r.eng.AddColumn(0, markers.MaxLength()); err != nil {
		return err
	}
	if err := r.eng.AddColumn(1, textline.AutoWidth); err != nil {
		return err
	}
	if list.Ordered {
		if err := r.eng.SetColumnFlags(0, textline.ColumnRight); err != nil {
			return err
		}
	}

	if err := r.eng.WriteNewline(); err != nil {
		return err
	}

	for _, item := range list.Items {
		marker, err := markers.Next()
		if err != nil {
			return err
		}

		if err := r.eng.Reset(); err != nil {
			return err
		}
		if err := r.eng.AddText(0, marker); err != nil {
			return err
		}
		if err := r.addSpans(1, item.Content); err != nil {
			return err
		}
		if err := r.eng.Write(false, false); err != nil {
			return err
		}

		if item.Nested != nil {
			if err := r.writeList(item.Nested, 1, level+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// addSpans appends the text of an inline span sequence to a column.
// Light emphasis is marked as /text/ and strong emphasis as *text*.
func (r *renderer) addSpans(column int, spans model.Spans) error {
	for _, span := range spans {
		switch s := span.(type) {
		case model.Text:
			if err := r.eng.AddText(column, string(s)); err != nil {
				return err
			}

		case *model.Emphasis:
			mark := "/"
			if s.Strong {
				mark = "*"
			}
			if err := r.eng.AddText(column, mark); err != nil {
				return err
			}
			if err := r.addSpans(column, s.Content); err != nil {
				return err
			}
			if err := r.eng.AddText(column, mark); err != nil {
				return err
			}

		case model.Entity:
			if err := r.eng.AddText(column, r.entityText(s)); err != nil {
				return err
			}

		default:
			r.reporter.Warningf("unexpected %v chunk in inline text", span.SpanKind())
		}
	}

	return nil
}

// entityText folds a named character into its plain-text form. Spacing
// entities become the unbreakable sentinel codepoints so that they
// survive wrapping and are only flattened at the encoder.
func (r *renderer) entityText(entity model.Entity) string {
	switch entity {
	case model.EntityNBSP:
		return string(charset.NoBreakSpace)
	case model.EntityAmp:
		return "&"
	case model.EntityLSquo, model.EntityRSquo:
		return "'"
	case model.EntityQuot, model.EntityLDquo, model.EntityRDquo:
		return "\""
	case model.EntityMinus:
		return "-"
	case model.EntityNDash:
		return strings.Repeat(string(charset.NoBreakHyphen), 2)
	case model.EntityMDash:
		return strings.Repeat(string(charset.NoBreakHyphen), 3)
	case model.EntityTimes:
		return "x"
	default:
		r.reporter.Warningf("entity '%v' has no text form", entity)
		return "?"
	}
}
