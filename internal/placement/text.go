package placement

import (
	"strings"
	"unicode/utf8"
)

// NonBreakingBlank stands in for empty text so a paragraph never collapses
// to zero height.
const NonBreakingBlank = "\u00a0"

// Measurer reports the rendered width of text at a font size.
type Measurer interface {
	TextWidth(text string, size float64) float64
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", ";", "\n")

// NormalizeText turns semicolons and newlines into explicit line breaks.
func NormalizeText(s string) []string {
	return strings.Split(lineBreaks.Replace(s), "\n")
}

// WrapText breaks s into lines no wider than width. Explicit breaks are
// kept; words wider than the line are split between runes.
func WrapText(s string, width, size float64, m Measurer) []string {
	if strings.TrimSpace(s) == "" {
		return []string{NonBreakingBlank}
	}
	var lines []string
	for _, para := range NormalizeText(s) {
		lines = append(lines, wrapParagraph(para, width, size, m)...)
	}
	return lines
}

func wrapParagraph(para string, width, size float64, m Measurer) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines   []string
		current string
	)
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.TextWidth(candidate, size) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		for word != "" && m.TextWidth(word, size) > width {
			head, tail := splitWord(word, width, size, m)
			lines = append(lines, head)
			word = tail
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord returns the longest prefix of word that fits, at least one rune.
func splitWord(word string, width, size float64, m Measurer) (string, string) {
	cut := 0
	for i := range word {
		if i == 0 {
			continue
		}
		if m.TextWidth(word[:i], size) > width {
			break
		}
		cut = i
	}
	if cut == 0 {
		_, n := utf8.DecodeRuneInString(word)
		cut = n
	}
	return word[:cut], word[cut:]
}
