package models

type Side int

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

type PageDimensions struct {
	Width  float64
	Height float64
}

// Card is one row of the input table. Values are never mutated after the
// table reader produces them; a card is identified only by its position.
type Card struct {
	Question   string `json:"question"`
	BackText   string `json:"back_text"`
	ColorKey   string `json:"color_key,omitempty"`
	FrontImage string `json:"front_image,omitempty"`
	BackImage  string `json:"back_image,omitempty"`
}

func (c Card) IsBlank() bool {
	return c.Question == "" && c.BackText == "" && c.ColorKey == "" &&
		c.FrontImage == "" && c.BackImage == ""
}

// Text returns the text shown on the given side.
func (c Card) Text(side Side) string {
	if side == Back {
		return c.BackText
	}
	return c.Question
}

// Image returns the image reference shown on the given side.
func (c Card) Image(side Side) string {
	if side == Back {
		return c.BackImage
	}
	return c.FrontImage
}

// FitToCapacity pads cards with blank records or truncates them so that
// exactly capacity cards are returned.
func FitToCapacity(cards []Card, capacity int) []Card {
	if capacity <= 0 {
		return nil
	}
	out := make([]Card, capacity)
	copy(out, cards)
	return out
}
