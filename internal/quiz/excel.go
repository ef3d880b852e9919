package quiz

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadExcel reads questions from the first sheet of an xlsx workbook.
func LoadExcel(path string) ([]Question, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	return questionsFromRows(rows), nil
}
