package table

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kpauljoseph/cardsheet/pkg/models"
)

// ReadXLSX reads cards from the first sheet of a workbook, using the same
// column mapping as CSV tables.
func ReadXLSX(r io.Reader) ([]models.Card, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return CardsFromRows(rows), nil
}
