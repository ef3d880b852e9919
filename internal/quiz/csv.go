package quiz

import (
	"encoding/csv"
	"fmt"
	"os"
)

// LoadCSV reads questions from a csv file with the same column layout as the
// xlsx source.
func LoadCSV(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return questionsFromRows(rows), nil
}
