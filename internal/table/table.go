package table

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/kpauljoseph/cardsheet/internal/palette"
	"github.com/kpauljoseph/cardsheet/pkg/logger"
	"github.com/kpauljoseph/cardsheet/pkg/models"
)

var (
	questionKeys   = []string{"question", "q"}
	backTextKeys   = []string{"texte", "text", "reponse", "réponse", "answer", "verso", "reponseverso"}
	frontImageKeys = []string{"image_recto", "imagerecto", "front_image"}
	backImageKeys  = []string{"image_verso", "imageverso", "back_image"}
)

var headerNames = func() map[string]bool {
	m := map[string]bool{}
	for _, keys := range [][]string{questionKeys, backTextKeys, frontImageKeys, backImageKeys} {
		for _, k := range keys {
			m[normalizeHeader(k)] = true
		}
	}
	return m
}()

// normalizeHeader lowercases a header cell and drops all whitespace.
func normalizeHeader(h string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(h)))
}

// ReadFile reads a card table, choosing the format from the extension.
func ReadFile(path string, logger *logger.Logger) ([]models.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	var cards []models.Card
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		cards, err = ReadXLSX(f)
	default:
		cards, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	logger.Debug("Read %d cards from %s", len(cards), path)
	return cards, nil
}

// CardsFromRows maps raw rows to cards. A first row naming any known
// column is a header; otherwise columns are positional: question, back
// text, front image, back image. Rows without card content are skipped.
func CardsFromRows(rows [][]string) []models.Card {
	if len(rows) == 0 {
		return nil
	}

	header := make([]string, len(rows[0]))
	hasHeader := false
	for i, h := range rows[0] {
		header[i] = normalizeHeader(h)
		if headerNames[header[i]] {
			hasHeader = true
		}
	}

	var cards []models.Card
	if hasHeader {
		for _, row := range rows[1:] {
			fields := make(map[string]string, len(header))
			for i, h := range header {
				if _, seen := fields[h]; seen {
					continue
				}
				fields[h] = cell(row, i)
			}
			cards = appendCard(cards, newCard(
				lookup(fields, questionKeys),
				lookup(fields, backTextKeys),
				lookup(fields, frontImageKeys),
				lookup(fields, backImageKeys),
			))
		}
		return cards
	}

	for _, row := range rows {
		cards = appendCard(cards, newCard(cell(row, 0), cell(row, 1), cell(row, 2), cell(row, 3)))
	}
	return cards
}

func newCard(question, backText, frontImage, backImage string) models.Card {
	token := palette.ExtractColorKey(question)
	return models.Card{
		Question:   token.Text,
		BackText:   backText,
		ColorKey:   token.Key,
		FrontImage: frontImage,
		BackImage:  backImage,
	}
}

func lookup(fields map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := fields[normalizeHeader(k)]; ok {
			return v
		}
	}
	return ""
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// appendCard skips rows that carry nothing in any mapped column.
func appendCard(cards []models.Card, card models.Card) []models.Card {
	if card.IsBlank() {
		return cards
	}
	return append(cards, card)
}
