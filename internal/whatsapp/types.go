package whatsapp

// Inbound webhook envelope (Cloud API). Only the fields the bot reads.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	Messages []InboundMessage `json:"messages,omitempty"`
}

type InboundMessage struct {
	From        string       `json:"from"`
	Type        string       `json:"type"`
	Text        *TextBody    `json:"text,omitempty"`
	Interactive *Interactive `json:"interactive,omitempty"`
}

type TextBody struct {
	Body string `json:"body"`
}

type Interactive struct {
	Type        string `json:"type"`
	ButtonReply *Reply `json:"button_reply,omitempty"`
	ListReply   *Reply `json:"list_reply,omitempty"`
}

type Reply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ReplyOption is one selectable entry of an outbound interactive message.
type ReplyOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Outbound request bodies for the Graph API /messages endpoint.
type sendMessageRequest struct {
	MessagingProduct string              `json:"messaging_product"`
	To               string              `json:"to"`
	Type             string              `json:"type,omitempty"`
	Text             *textPayload        `json:"text,omitempty"`
	Interactive      *interactivePayload `json:"interactive,omitempty"`
}

type textPayload struct {
	Body string `json:"body"`
}

type interactivePayload struct {
	Type   string        `json:"type"`
	Body   bodyPayload   `json:"body"`
	Action actionPayload `json:"action"`
}

type bodyPayload struct {
	Text string `json:"text"`
}

type actionPayload struct {
	Buttons  []buttonPayload  `json:"buttons,omitempty"`
	Button   string           `json:"button,omitempty"`
	Sections []sectionPayload `json:"sections,omitempty"`
}

type buttonPayload struct {
	Type  string      `json:"type"`
	Reply ReplyOption `json:"reply"`
}

type sectionPayload struct {
	Title string        `json:"title"`
	Rows  []ReplyOption `json:"rows"`
}

type apiResponse struct {
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}
