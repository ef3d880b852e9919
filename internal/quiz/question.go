package quiz

import "strconv"

// MaxOptions is the widest option row the source table can carry
// (and the widest control WhatsApp can render as a list).
const MaxOptions = 4

const defaultExplanation = "No explanation available."

type Question struct {
	Index        int            `json:"index"`
	Text         string         `json:"text"`
	Options      map[int]string `json:"options"`
	Correct      int            `json:"correct_option"`
	Explanations map[int]string `json:"explanations,omitempty"`
}

// OptionNumbers returns the populated option slots in ascending order.
// Blank slots in the source are omitted, not padded.
func (q Question) OptionNumbers() []int {
	nums := make([]int, 0, len(q.Options))
	for n := 1; n <= MaxOptions; n++ {
		if _, ok := q.Options[n]; ok {
			nums = append(nums, n)
		}
	}
	return nums
}

// CorrectID is the canonical string id of the correct option. Replies are
// matched against this string to avoid numeric/text coercion. If the marked
// correct option has no populated slot the question is never answerable
// correctly, so the id is empty rather than a number no button carries.
func (q Question) CorrectID() string {
	if _, ok := q.Options[q.Correct]; !ok {
		return ""
	}
	return strconv.Itoa(q.Correct)
}

// Explanation returns the explanation for an option slot, falling back to a
// placeholder when the source left it blank.
func (q Question) Explanation(option int) string {
	if text, ok := q.Explanations[option]; ok && text != "" {
		return text
	}
	return defaultExplanation
}
