package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Messenger is the outbound send capability the engine depends on. The
// concrete Client talks to the Graph API; tests plug in a fake.
type Messenger interface {
	SendText(to, body string) error
	SendButtons(to, body string, buttons []ReplyOption) error
	SendList(to, body, buttonLabel string, rows []ReplyOption) error
}

const listSectionTitle = "Answers"

type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
}

func NewClient(token, phoneNumberID string) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("https://graph.facebook.com/v17.0/%s", phoneNumberID),
	}
}

func (c *Client) call(req sendMessageRequest) error {
	req.MessagingProduct = "whatsapp"

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if apiResp.Error != nil {
		return fmt.Errorf("whatsapp: %s (code %d)", apiResp.Error.Message, apiResp.Error.Code)
	}

	return nil
}

func (c *Client) SendText(to, body string) error {
	return c.call(sendMessageRequest{
		To:   to,
		Text: &textPayload{Body: body},
	})
}

func (c *Client) SendButtons(to, body string, buttons []ReplyOption) error {
	action := actionPayload{}
	for _, b := range buttons {
		action.Buttons = append(action.Buttons, buttonPayload{Type: "reply", Reply: b})
	}

	return c.call(sendMessageRequest{
		To:   to,
		Type: "interactive",
		Interactive: &interactivePayload{
			Type:   "button",
			Body:   bodyPayload{Text: body},
			Action: action,
		},
	})
}

func (c *Client) SendList(to, body, buttonLabel string, rows []ReplyOption) error {
	return c.call(sendMessageRequest{
		To:   to,
		Type: "interactive",
		Interactive: &interactivePayload{
			Type: "list",
			Body: bodyPayload{Text: body},
			Action: actionPayload{
				Button:   buttonLabel,
				Sections: []sectionPayload{{Title: listSectionTitle, Rows: rows}},
			},
		},
	})
}
