package listnum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/textmill/textmill/charset"
)

// MaxValue is the largest entry number supported. It is dictated by
// Roman numerals only working up to 3999 without extra tricks; for
// convenience all styles share the limit.
const MaxValue = 3999

var (
	// ErrTooLong is returned when a list exceeds MaxValue entries.
	ErrTooLong = errors.New("listnum: list too long")

	// ErrNoBullets is returned when an unordered list is created with
	// no bullet texts to choose from.
	ErrNoBullets = errors.New("listnum: no bullet texts supplied")
)

type style int

const (
	styleUnordered style = iota
	styleDecimal
	styleLowerAlpha
	styleLowerRoman
	styleUpperAlpha
	styleUpperRoman
)

// The ordered styles in the sequence they are assigned to nesting levels.
var orderedStyles = []style{
	styleDecimal,
	styleLowerAlpha,
	styleLowerRoman,
	styleUpperAlpha,
	styleUpperRoman,
}

// The list lengths at which decimal numbers get one character longer.
var decimalLengthPoints = []int{1, 10, 100, 1000}

// The list lengths at which alphabetic numbers get one character longer.
var alphabeticLengthPoints = []int{1, 27, 703}

// The list lengths at which roman numbers get one character longer.
var romanLengthPoints = []int{1, 2, 3, 8, 18, 28, 38, 88, 188, 288, 388, 888, 1888, 2888, 3888}

// The break points for calculating roman numerals, smallest first.
var romanBreakPoints = []int{1, 4, 5, 9, 10, 40, 50, 90, 100, 400, 500, 900, 1000}

// The lower case roman numeral components, matching romanBreakPoints.
var romanSymbols = []string{"i", "iv", "v", "ix", "x", "xl", "l", "xc", "c", "cd", "d", "cm", "m"}

// List yields the marker text for successive entries of one list.
type List struct {
	style     style
	maxLength int
	current   int
	bullet    string
}

// Unordered creates a list using a fixed bullet marker. The bullet is
// chosen from the supplied texts by nesting level, wrapping around when
// the levels run out.
func Unordered(bullets []string, level int) (*List, error) {
	if len(bullets) == 0 {
		return nil, ErrNoBullets
	}

	bullet := bullets[level%len(bullets)]

	return &List{
		style:     styleUnordered,
		bullet:    bullet,
		maxLength: charset.LengthString(bullet),
	}, nil
}

// Ordered creates a numbered list of a known length. The numbering style
// is chosen by nesting level, and the length is used to predict the
// widest marker the list will produce.
func Ordered(length, level int) (*List, error) {
	if length > MaxValue {
		return nil, ErrTooLong
	}

	st := orderedStyles[level%len(orderedStyles)]

	var points []int
	switch st {
	case styleDecimal:
		points = decimalLengthPoints
	case styleLowerAlpha, styleUpperAlpha:
		points = alphabeticLengthPoints
	default:
		points = romanLengthPoints
	}

	// The break points are the list lengths at which the marker grows
	// one character beyond a base of zero, so the widest marker is the
	// number of points passed, plus one for the '.' terminator.
	width := 0
	for width < len(points) && length >= points[width] {
		width++
	}

	return &List{
		style:     st,
		maxLength: width + 1,
	}, nil
}

// MaxLength returns the width, in codepoints, of the widest marker the
// list can produce, including the terminator.
func (l *List) MaxLength() int {
	return l.maxLength
}

// Next returns the marker text for the next entry. Past MaxValue entries
// it returns an empty marker and ErrTooLong.
func (l *List) Next() (string, error) {
	if l.style == styleUnordered {
		return l.bullet, nil
	}

	l.current++
	if l.current > MaxValue {
		return "", ErrTooLong
	}

	switch l.style {
	case styleDecimal:
		return fmt.Sprintf("%d.", l.current), nil
	case styleLowerAlpha:
		return alphabetic(l.current, false), nil
	case styleUpperAlpha:
		return alphabetic(l.current, true), nil
	case styleUpperRoman:
		return strings.ToUpper(roman(l.current)), nil
	default:
		return roman(l.current), nil
	}
}

// alphabetic formats a number as a, b, ... z, aa, ab, and so on.
func alphabetic(value int, upper bool) string {
	base := byte('a')
	if upper {
		base = 'A'
	}

	var digits []byte
	for value > 0 {
		value--
		digits = append([]byte{base + byte(value%26)}, digits...)
		value /= 26
	}

	return string(digits) + "."
}

// roman formats a number as lower-case roman numerals.
func roman(value int) string {
	var sb strings.Builder

	for i := len(romanBreakPoints) - 1; i >= 0; i-- {
		for value >= romanBreakPoints[i] {
			sb.WriteString(romanSymbols[i])
			value -= romanBreakPoints[i]
		}
	}

	sb.WriteString(".")

	return sb.String()
}
