package handlers

import (
	"net/http"

	"github.com/ram123789456/AEFI-chatbot/internal/quiz"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	bank *quiz.Bank
}

func NewQuestionHandler(bank *quiz.Bank) *QuestionHandler {
	return &QuestionHandler{bank: bank}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":     h.bank.Count(),
		"questions": h.bank.All(),
	})
}
