package palette

import (
	"regexp"
	"strings"
)

type TokenPosition int

const (
	NoToken TokenPosition = iota
	LeadingToken
	TrailingToken
)

var (
	leadingToken  = regexp.MustCompile(`(?s)^\s*\(([^)]+)\)\s*(.*)$`)
	trailingToken = regexp.MustCompile(`\s*\(([^)]+)\)\s*$`)
)

// Extraction is the result of splitting a color token off a question.
type Extraction struct {
	Key      string
	Text     string
	Position TokenPosition
}

// ExtractColorKey pulls one parenthesized token from the very start or the
// very end of raw. A leading token wins over a trailing one, and only one
// token is ever removed.
func ExtractColorKey(raw string) Extraction {
	if m := leadingToken.FindStringSubmatch(raw); m != nil {
		return Extraction{
			Key:      strings.TrimSpace(m[1]),
			Text:     strings.TrimSpace(m[2]),
			Position: LeadingToken,
		}
	}
	if loc := trailingToken.FindStringSubmatchIndex(raw); loc != nil {
		return Extraction{
			Key:      strings.TrimSpace(raw[loc[2]:loc[3]]),
			Text:     strings.TrimSpace(raw[:loc[0]]),
			Position: TrailingToken,
		}
	}
	return Extraction{Text: strings.TrimSpace(raw), Position: NoToken}
}
