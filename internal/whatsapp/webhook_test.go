package whatsapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookRouter(t *testing.T, secret string) (*gin.Engine, *fakeMessenger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &fakeMessenger{}
	handler := NewEventHandler(m, NewSessionStore(), oneQuestionBank(), nil)
	w := NewWebhook(handler, "verify-token", secret)

	r := gin.New()
	r.GET("/webhook", w.Verify)
	r.POST("/webhook", w.Receive)
	return r, m
}

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestVerifyHandshake(t *testing.T) {
	r, _ := newWebhookRouter(t, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=verify-token&hub.challenge=1158201444", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1158201444", rec.Body.String())
}

func TestVerifyHandshakeRejectsBadToken(t *testing.T) {
	r, _ := newWebhookRouter(t, "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=42", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReceiveDispatchesToEngine(t *testing.T) {
	r, m := newWebhookRouter(t, "")

	body, err := json.Marshal(textEvent("user1", "hi"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(string(body)))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, waitFor(t, func() bool { return len(m.messages()) == 1 }),
		"expected the greeting to go out")
}

// A delivery without a messages array must be acknowledged without any
// outbound call, so the provider does not redeliver it.
func TestReceiveAcknowledgesUnusableDeliveries(t *testing.T) {
	r, m := newWebhookRouter(t, "")

	for _, body := range []string{
		`{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"statuses":[]}}]}]}`,
		`not json at all`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "body: %s", body)
	}

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, m.messages())
}

func TestReceiveSignatureCheck(t *testing.T) {
	const secret = "app-secret"
	r, _ := newWebhookRouter(t, secret)

	body, err := json.Marshal(textEvent("user1", "hi"))
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	sig := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(string(body)))
	req.Header.Set("X-Hub-Signature-256", sig)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(string(body)))
	req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
