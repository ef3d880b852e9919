package main

import (
	"log"
	"net/http"

	"github.com/ram123789456/AEFI-chatbot/internal/config"
	"github.com/ram123789456/AEFI-chatbot/internal/database"
	"github.com/ram123789456/AEFI-chatbot/internal/handlers"
	"github.com/ram123789456/AEFI-chatbot/internal/middleware"
	"github.com/ram123789456/AEFI-chatbot/internal/quiz"
	"github.com/ram123789456/AEFI-chatbot/internal/whatsapp"
	"github.com/ram123789456/AEFI-chatbot/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	bank := loadBank(cfg)
	log.Printf("question bank loaded: %d questions", bank.Count())

	hub := ws.NewHub()
	store := whatsapp.NewSessionStore()
	client := whatsapp.NewClient(cfg.WhatsAppToken, cfg.PhoneNumberID)
	engine := whatsapp.NewEventHandler(client, store, bank, hub)
	webhook := whatsapp.NewWebhook(engine, cfg.VerifyToken, cfg.AppSecret)

	questionHandler := handlers.NewQuestionHandler(bank)
	sessionHandler := handlers.NewSessionHandler(store)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "✅ AEFI WhatsApp bot is running")
	})
	r.GET("/webhook", webhook.Verify)
	r.POST("/webhook", webhook.Receive)
	r.GET("/ws/monitor", wsHandler.HandleMonitor)

	api := r.Group("/api/v1")
	api.Use(middleware.AdminAuth(cfg.AdminAPIKey))
	{
		api.GET("/questions", questionHandler.ListQuestions)
		api.GET("/sessions", sessionHandler.ListSessions)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// loadBank builds the question bank from the configured source. A load
// failure degrades to an empty bank: the bot keeps running and answers quiz
// starts with a "no content" notice.
func loadBank(cfg *config.Config) *quiz.Bank {
	var (
		questions []quiz.Question
		err       error
	)

	switch cfg.QuestionSource {
	case "db":
		db := database.Connect(cfg)
		database.AutoMigrate(db)
		questions, err = quiz.LoadDatabase(db)
	case "csv":
		questions, err = quiz.LoadCSV(cfg.QuestionsFile)
	default:
		questions, err = quiz.LoadExcel(cfg.QuestionsFile)
	}

	if err != nil {
		log.Printf("could not load questions: %v", err)
		return quiz.NewBank(nil)
	}
	return quiz.NewBank(questions)
}
