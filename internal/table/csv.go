package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kpauljoseph/cardsheet/pkg/models"
)

const sniffSampleLines = 5

func ReadCSV(r io.Reader) ([]models.Card, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseCSV(string(data))
}

func ParseCSV(data string) ([]models.Card, error) {
	data = strings.TrimPrefix(data, "\ufeff")

	reader := csv.NewReader(strings.NewReader(data))
	reader.Comma = SniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return CardsFromRows(rows), nil
}

// SniffDelimiter guesses the field separator. Semicolons win when the first
// line splits on them or every sampled line contains one; otherwise comma
// and tab compete on how consistently they appear, comma winning ties.
func SniffDelimiter(data string) rune {
	lines := sampleLines(strings.TrimPrefix(data, "\ufeff"))

	if strings.Contains(data, ";") && len(lines) > 0 {
		if countFields(lines[0], ';') > 1 {
			return ';'
		}
		all := true
		for _, line := range lines {
			if strings.TrimSpace(line) != "" && !strings.Contains(line, ";") {
				all = false
				break
			}
		}
		if all {
			return ';'
		}
	}

	best, bestScore := ',', 0
	for _, d := range []rune{',', '\t'} {
		if score := consistency(lines, d); score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

func sampleLines(data string) []string {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	if len(lines) > sniffSampleLines {
		lines = lines[:sniffSampleLines]
	}
	return lines
}

func countFields(line string, delim rune) int {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		return strings.Count(line, string(delim)) + 1
	}
	return len(record)
}

// consistency counts the non-blank lines that split into the same number
// of fields as the first one, provided that number is above one.
func consistency(lines []string, delim rune) int {
	want, score := 0, 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := countFields(line, delim)
		if want == 0 {
			if n < 2 {
				return 0
			}
			want = n
		}
		if n == want {
			score++
		}
	}
	return score
}
