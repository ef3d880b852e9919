package whatsapp

import (
	"log"
	"strconv"

	"github.com/ram123789456/AEFI-chatbot/internal/quiz"
	"github.com/ram123789456/AEFI-chatbot/internal/ws"

	"github.com/gin-gonic/gin"
)

// EventHandler is the conversation state machine. It consumes one parsed
// webhook event at a time, mutates the user's session under the store lock,
// and only then issues the outbound sends, so a send failure never rolls back
// committed progress.
type EventHandler struct {
	messenger Messenger
	store     *SessionStore
	bank      *quiz.Bank
	hub       *ws.Hub
}

func NewEventHandler(messenger Messenger, store *SessionStore, bank *quiz.Bank, hub *ws.Hub) *EventHandler {
	return &EventHandler{
		messenger: messenger,
		store:     store,
		bank:      bank,
		hub:       hub,
	}
}

func (h *EventHandler) Handle(payload WebhookPayload) {
	ev := ParseEvent(payload)
	switch ev.Kind {
	case EventText:
		h.handleText(ev)
	case EventReply:
		if ev.ReplyID == StartButtonID {
			h.handleStart(ev)
		} else {
			h.handleAnswer(ev)
		}
	default:
		// Malformed delivery: already acknowledged upstream, nothing to do.
	}
}

func (h *EventHandler) handleText(ev Event) {
	var outbox []Rendered
	h.store.Update(ev.From, func(s *Session) {
		switch s.State {
		case StateNew:
			s.State = StateAwaitingStart
			outbox = append(outbox, RenderGreeting())
		case StateAwaitingStart:
			// Stray message before the start press: repeat the greeting.
			outbox = append(outbox, RenderGreeting())
		}
		// Text during an active quiz is ignored.
	})

	if len(outbox) > 0 {
		h.send(ev.From, outbox)
		h.broadcast("greeting_sent", gin.H{"user": ev.From})
	}
}

func (h *EventHandler) handleStart(ev Event) {
	var outbox []Rendered
	var greeted, started bool
	h.store.Update(ev.From, func(s *Session) {
		if s.State == StateNew {
			// First contact, even via a stale start control left over from
			// a finished quiz: greet before anything else.
			s.State = StateAwaitingStart
			outbox = append(outbox, RenderGreeting())
			greeted = true
			return
		}
		if s.State == StateInProgress {
			// Duplicate start press mid-quiz.
			return
		}
		if h.bank.Count() == 0 {
			s.State = StateAwaitingStart
			outbox = append(outbox, RenderNoContent())
			return
		}

		q, err := h.bank.Get(0)
		if err != nil {
			log.Printf("engine: first question: %v", err)
			s.State = StateAwaitingStart
			return
		}

		s.State = StateInProgress
		s.QuestionIndex = 0
		s.Score = 0
		outbox = append(outbox, RenderQuestion(q, 1))
		started = true
	})

	h.send(ev.From, outbox)
	if greeted {
		h.broadcast("greeting_sent", gin.H{"user": ev.From})
	}
	if started {
		h.broadcast("quiz_started", gin.H{"user": ev.From, "total": h.bank.Count()})
	}
}

func (h *EventHandler) handleAnswer(ev Event) {
	var outbox []Rendered
	var greeted, answered, correct, completed bool
	var after Session

	h.store.Update(ev.From, func(s *Session) {
		if s.State == StateNew || s.State == StateAwaitingStart {
			// A reply that is not the start control while no quiz is
			// active: treat like any other stray event and re-greet.
			s.State = StateAwaitingStart
			outbox = append(outbox, RenderGreeting())
			greeted = true
			return
		}
		if s.State != StateInProgress {
			return
		}

		q, err := h.bank.Get(s.QuestionIndex)
		if err != nil {
			// Index past the bank is a logic bug; drop the session instead
			// of crashing the event loop.
			log.Printf("engine: %v", err)
			s.State = StateCompleted
			return
		}

		chosen, ok := optionNumber(q, ev.ReplyID)
		if !ok {
			// Control id from a question that is no longer current
			// (duplicate or late delivery): drop without advancing.
			return
		}
		answered = true

		if ev.ReplyID == q.CorrectID() {
			s.Score++
			correct = true
			outbox = append(outbox, RenderCorrect(q.Explanation(chosen)))
		} else {
			outbox = append(outbox, RenderIncorrect(q.Options[q.Correct], q.Explanation(q.Correct)))
		}

		s.QuestionIndex++
		if s.QuestionIndex < h.bank.Count() {
			next, err := h.bank.Get(s.QuestionIndex)
			if err != nil {
				log.Printf("engine: %v", err)
				s.State = StateCompleted
				completed = true
			} else {
				outbox = append(outbox, RenderQuestion(next, s.QuestionIndex+1))
			}
		} else {
			outbox = append(outbox, RenderCompletion(s.Score, h.bank.Count()))
			s.State = StateCompleted
			completed = true
		}
		after = *s
	})

	h.send(ev.From, outbox)

	if greeted {
		h.broadcast("greeting_sent", gin.H{"user": ev.From})
	}
	if answered {
		h.broadcast("answer_received", gin.H{
			"user":    ev.From,
			"correct": correct,
			"score":   after.Score,
		})
	}
	if completed {
		h.broadcast("quiz_completed", gin.H{
			"user":  ev.From,
			"score": after.Score,
			"total": h.bank.Count(),
		})
	}
}

// send flushes the outbox in order. Failures are logged and skipped: the
// session mutation has already committed and retries belong to the provider
// client, not the engine.
func (h *EventHandler) send(to string, outbox []Rendered) {
	for _, r := range outbox {
		if err := h.dispatch(to, r); err != nil {
			log.Printf("send to %s: %v", to, err)
		}
	}
}

func (h *EventHandler) dispatch(to string, r Rendered) error {
	switch r.Kind {
	case "buttons":
		return h.messenger.SendButtons(to, r.Body, r.Items)
	case "list":
		return h.messenger.SendList(to, r.Body, r.ButtonLabel, r.Items)
	default:
		return h.messenger.SendText(to, r.Body)
	}
}

func (h *EventHandler) broadcast(eventType string, data interface{}) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(ws.WSMessage{Type: eventType, Data: data})
}

func optionNumber(q quiz.Question, id string) (int, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, false
	}
	_, ok := q.Options[n]
	return n, ok
}
