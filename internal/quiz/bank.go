package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrOutOfRange = errors.New("question index out of range")

// Bank is the immutable, ordered question catalog. It is built once at
// startup; an empty bank is valid and makes the engine degrade to a
// "no content" notice instead of crashing.
type Bank struct {
	questions []Question
}

func NewBank(questions []Question) *Bank {
	return &Bank{questions: questions}
}

func (b *Bank) Count() int {
	return len(b.questions)
}

func (b *Bank) Get(index int) (Question, error) {
	if index < 0 || index >= len(b.questions) {
		return Question{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(b.questions))
	}
	return b.questions[index], nil
}

func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// questionsFromRows turns a header row plus data rows into typed questions,
// resolving all fallback rules at load time: a blank "Question" cell falls
// back to the first column, blank option slots are omitted, and rows without
// any option are skipped.
func questionsFromRows(rows [][]string) []Question {
	if len(rows) < 2 {
		return nil
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}

	var questions []Question
	for _, row := range rows[1:] {
		text := cell(row, cols, "Question")
		if text == "" && len(row) > 0 {
			text = strings.TrimSpace(row[0])
		}

		options := make(map[int]string)
		explanations := make(map[int]string)
		for n := 1; n <= MaxOptions; n++ {
			if opt := cell(row, cols, fmt.Sprintf("Option %d", n)); opt != "" {
				options[n] = opt
			}
			if expl := cell(row, cols, fmt.Sprintf("Explanation %d", n)); expl != "" {
				explanations[n] = expl
			}
		}
		if text == "" || len(options) == 0 {
			continue
		}

		q := Question{
			Index:        len(questions),
			Text:         text,
			Options:      options,
			Correct:      parseOptionNumber(cell(row, cols, "Correct Option")),
			Explanations: explanations,
		}
		questions = append(questions, q)
	}
	return questions
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseOptionNumber accepts both "2" and spreadsheet-flavoured "2.0".
func parseOptionNumber(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
