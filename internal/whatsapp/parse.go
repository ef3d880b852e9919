package whatsapp

type EventKind int

const (
	EventUnrecognized EventKind = iota
	EventText
	EventReply
)

// Event is the flattened form of one webhook delivery. Anything missing a
// sender, a message, or a known interactive sub-type collapses to
// EventUnrecognized and is dropped by the engine.
type Event struct {
	Kind    EventKind
	From    string
	Text    string
	ReplyID string
}

// ParseEvent digs the single message out of the webhook envelope and tags it,
// so the engine dispatches on a variant instead of probing optional fields.
func ParseEvent(p WebhookPayload) Event {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return Event{}
	}
	msgs := p.Entry[0].Changes[0].Value.Messages
	if len(msgs) == 0 {
		return Event{}
	}

	msg := msgs[0]
	if msg.From == "" {
		return Event{}
	}

	switch msg.Type {
	case "text":
		if msg.Text == nil {
			return Event{}
		}
		return Event{Kind: EventText, From: msg.From, Text: msg.Text.Body}
	case "interactive":
		if msg.Interactive == nil {
			return Event{}
		}
		var reply *Reply
		switch msg.Interactive.Type {
		case "button_reply":
			reply = msg.Interactive.ButtonReply
		case "list_reply":
			reply = msg.Interactive.ListReply
		}
		if reply == nil || reply.ID == "" {
			return Event{}
		}
		return Event{Kind: EventReply, From: msg.From, ReplyID: reply.ID}
	}

	return Event{}
}
