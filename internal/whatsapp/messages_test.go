package whatsapp

import (
	"strings"
	"testing"

	"github.com/ram123789456/AEFI-chatbot/internal/quiz"
)

func TestRenderQuestionControlShape(t *testing.T) {
	tests := []struct {
		name     string
		options  int
		wantKind string
	}{
		{"one option", 1, "buttons"},
		{"two options", 2, "buttons"},
		{"three options", 3, "buttons"},
		{"four options", 4, "list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := make(map[int]string)
			for n := 1; n <= tt.options; n++ {
				options[n] = "option"
			}
			r := RenderQuestion(quiz.Question{Text: "q", Options: options, Correct: 1}, 1)

			if r.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", r.Kind, tt.wantKind)
			}
			if len(r.Items) != tt.options {
				t.Errorf("got %d items, want %d", len(r.Items), tt.options)
			}
			if r.Kind == "list" && r.ButtonLabel == "" {
				t.Error("list message needs a button label")
			}
		})
	}
}

func TestRenderQuestionItems(t *testing.T) {
	q := quiz.Question{
		Text: "Pick one",
		Options: map[int]string{
			1: "short",
			3: strings.Repeat("x", 30),
		},
		Correct: 1,
	}

	r := RenderQuestion(q, 3)

	if !strings.Contains(r.Body, "Question 3:") {
		t.Errorf("Body = %q, want question number prefix", r.Body)
	}
	if len(r.Items) != 2 {
		t.Fatalf("got %d items, want 2 (blank slots omitted)", len(r.Items))
	}
	if r.Items[0].ID != "1" || r.Items[1].ID != "3" {
		t.Errorf("item ids = %q, %q; want option numbers as strings", r.Items[0].ID, r.Items[1].ID)
	}
	if got := len([]rune(r.Items[1].Title)); got != titleWidth {
		t.Errorf("long title length = %d runes, want %d", got, titleWidth)
	}
}

func TestTruncateRunes(t *testing.T) {
	// Display width counts characters, not bytes.
	devanagari := strings.Repeat("अ", 25)
	got := truncate(devanagari, titleWidth)
	if len([]rune(got)) != titleWidth {
		t.Errorf("truncated to %d runes, want %d", len([]rune(got)), titleWidth)
	}

	if got := truncate("short", titleWidth); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
}

func TestRenderGreeting(t *testing.T) {
	r := RenderGreeting()
	if r.Kind != "buttons" {
		t.Fatalf("Kind = %q, want buttons", r.Kind)
	}
	if len(r.Items) != 1 || r.Items[0].ID != StartButtonID {
		t.Errorf("greeting must carry exactly the start control, got %+v", r.Items)
	}
}

func TestRenderCompletion(t *testing.T) {
	r := RenderCompletion(3, 5)
	if r.Kind != "text" {
		t.Errorf("Kind = %q, want text", r.Kind)
	}
	if !strings.Contains(r.Body, "3/5") {
		t.Errorf("Body = %q, want final tally", r.Body)
	}
}
