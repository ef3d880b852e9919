package quiz

import (
	"fmt"

	"github.com/ram123789456/AEFI-chatbot/internal/models"

	"gorm.io/gorm"
)

// LoadDatabase reads questions from the postgres question table, ordered by
// order_num. The table variant of the source contract; rows map to the same
// fallback rules as the file loaders.
func LoadDatabase(db *gorm.DB) ([]Question, error) {
	var rows []models.Question
	err := db.Order("order_num ASC").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	var questions []Question
	for _, row := range rows {
		options := make(map[int]string)
		explanations := make(map[int]string)
		correct := 0
		for _, opt := range row.Options {
			if opt.Number < 1 || opt.Number > MaxOptions || opt.Text == "" {
				continue
			}
			options[opt.Number] = opt.Text
			if opt.Explanation != "" {
				explanations[opt.Number] = opt.Explanation
			}
			if opt.IsCorrect {
				correct = opt.Number
			}
		}
		if row.Text == "" || len(options) == 0 {
			continue
		}

		questions = append(questions, Question{
			Index:        len(questions),
			Text:         row.Text,
			Options:      options,
			Correct:      correct,
			Explanations: explanations,
		})
	}
	return questions, nil
}
