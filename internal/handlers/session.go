package handlers

import (
	"net/http"

	"github.com/ram123789456/AEFI-chatbot/internal/whatsapp"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	store *whatsapp.SessionStore
}

func NewSessionHandler(store *whatsapp.SessionStore) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"count":    len(sessions),
		"sessions": sessions,
	})
}
