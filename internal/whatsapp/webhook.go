package whatsapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Webhook owns the provider-facing HTTP surface: the one-time GET
// verification handshake and the POST receiver. The receiver acknowledges
// every delivery it can read, even unusable ones, so the provider never
// retries the same event into a storm.
type Webhook struct {
	handler     *EventHandler
	verifyToken string
	appSecret   string
}

func NewWebhook(handler *EventHandler, verifyToken, appSecret string) *Webhook {
	return &Webhook{
		handler:     handler,
		verifyToken: verifyToken,
		appSecret:   appSecret,
	}
}

func (w *Webhook) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == w.verifyToken {
		log.Println("webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}

	log.Println("webhook verification failed")
	c.String(http.StatusForbidden, "verification failed")
}

func (w *Webhook) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if w.appSecret != "" {
		if !validSignature(body, c.GetHeader("X-Hub-Signature-256"), w.appSecret) {
			c.Status(http.StatusUnauthorized)
			return
		}
	}

	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		// Still acknowledge: a payload we cannot parse will not get better
		// on redelivery.
		log.Printf("webhook: bad payload: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	go w.handler.Handle(payload)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func validSignature(body []byte, header, secret string) bool {
	sig := strings.TrimPrefix(header, "sha256=")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(sig), []byte(want))
}
