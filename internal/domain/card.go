package domain

// Color is a card color. Black is reserved for wild cards.
type Color string

const (
	ColorNone   Color = ""
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorBlack  Color = "black"
)

// Colors lists the four playable colors, in deck build order.
var Colors = []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}

// ParseColor maps a wire color string to a playable (non-black) color.
func ParseColor(s string) (Color, bool) {
	switch Color(s) {
	case ColorRed, ColorYellow, ColorGreen, ColorBlue:
		return Color(s), true
	}
	return ColorNone, false
}

// Kind is the closed set of card effects. Number cards additionally carry
// their face value; the engine switches exhaustively over Kind when a card
// is played.
type Kind string

const (
	KindNumber       Kind = "number"
	KindSkip         Kind = "skip"
	KindReverse      Kind = "reverse"
	KindDrawTwo      Kind = "+2"
	KindWild         Kind = "wildcard"
	KindWildDrawFour Kind = "+4"
)

// Card is a single Uno card. Cards are immutable once constructed; the
// temporary color of a played wild card is tracked on the Game's discard
// top, never on the card itself.
type Card struct {
	Color Color `json:"color"`
	Kind  Kind  `json:"kind"`
	Value int   `json:"value"` // face value, 0..9, only meaningful for KindNumber
}

// NewCard validates the color/kind pairing and returns the card.
// Black pairs only with wildcard/+4; the four colors pair only with
// numbers, skip, reverse and +2.
func NewCard(color Color, kind Kind, value int) (Card, error) {
	switch color {
	case ColorBlack:
		if kind != KindWild && kind != KindWildDrawFour {
			return Card{}, ErrInvalidCard
		}
	case ColorRed, ColorYellow, ColorGreen, ColorBlue:
		switch kind {
		case KindNumber:
			if value < 0 || value > 9 {
				return Card{}, ErrInvalidCard
			}
		case KindSkip, KindReverse, KindDrawTwo:
		default:
			return Card{}, ErrInvalidCard
		}
	default:
		return Card{}, ErrInvalidCard
	}
	if kind != KindNumber && value != 0 {
		return Card{}, ErrInvalidCard
	}
	return Card{Color: color, Kind: kind, Value: value}, nil
}

// Label renders the card in the wire vocabulary: "5", "skip",
// "reverse", "+2", "wildcard", "+4".
func (c Card) Label() string {
	if c.Kind == KindNumber {
		return string(rune('0' + c.Value))
	}
	return string(c.Kind)
}

// sameType reports whether two cards share a type for matching purposes.
// Number cards match only on equal face value.
func sameType(a, b Card) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindNumber {
		return a.Value == b.Value
	}
	return true
}

// Playable reports whether candidate may be played on the given top card.
// topColor is the top card's effective color: its temporary color when one
// is assigned, else its true color.
func Playable(top Card, topColor Color, candidate Card) bool {
	if topColor == ColorNone {
		topColor = top.Color
	}
	return candidate.Color == topColor ||
		sameType(top, candidate) ||
		candidate.Color == ColorBlack
}
