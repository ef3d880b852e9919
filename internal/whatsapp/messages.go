package whatsapp

import (
	"fmt"
	"strconv"

	"github.com/ram123789456/AEFI-chatbot/internal/quiz"
)

const (
	// StartButtonID tags the greeting's start control.
	StartButtonID = "start_quiz"

	// maxButtonOptions is the provider limit on reply buttons per message;
	// wider questions go out as a single-select list instead.
	maxButtonOptions = 3

	// titleWidth is the provider limit on button/row titles.
	titleWidth = 20
)

// Rendered is a provider-agnostic outbound message; send dispatches it onto
// the Messenger call that matches its kind.
type Rendered struct {
	Kind        string // "text", "buttons" or "list"
	Body        string
	Items       []ReplyOption
	ButtonLabel string
}

func RenderGreeting() Rendered {
	return Rendered{
		Kind: "buttons",
		Body: "Welcome to the AEFI training bot! 🙏\nWould you like to start the quiz?",
		Items: []ReplyOption{
			{ID: StartButtonID, Title: "Start ✅"},
		},
	}
}

// RenderQuestion builds the interactive control for one question. Each option
// is tagged with its option number as an opaque string id; the title is the
// option text cut to the display width.
func RenderQuestion(q quiz.Question, number int) Rendered {
	items := make([]ReplyOption, 0, len(q.Options))
	for _, n := range q.OptionNumbers() {
		items = append(items, ReplyOption{
			ID:    strconv.Itoa(n),
			Title: truncate(q.Options[n], titleWidth),
		})
	}

	body := fmt.Sprintf("Question %d: %s", number, q.Text)

	if len(items) <= maxButtonOptions {
		return Rendered{Kind: "buttons", Body: body, Items: items}
	}
	return Rendered{Kind: "list", Body: body, Items: items, ButtonLabel: "Choose an option"}
}

func RenderCorrect(explanation string) Rendered {
	return Rendered{
		Kind: "text",
		Body: fmt.Sprintf("✅ Correct!\n%s", explanation),
	}
}

func RenderIncorrect(correctText, explanation string) Rendered {
	return Rendered{
		Kind: "text",
		Body: fmt.Sprintf("❌ Incorrect.\n👉 Correct answer: %s\nℹ️ Why: %s", correctText, explanation),
	}
}

func RenderCompletion(score, total int) Rendered {
	return Rendered{
		Kind: "text",
		Body: fmt.Sprintf("🎉 Training complete!\nYour score: %d/%d", score, total),
	}
}

func RenderNoContent() Rendered {
	return Rendered{
		Kind: "text",
		Body: "⚠️ No questions are available right now. Please try again later.",
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
