package config

import "os"

type Config struct {
	WhatsAppToken  string
	PhoneNumberID  string
	VerifyToken    string
	AppSecret      string
	AdminAPIKey    string
	ServerPort     string
	QuestionSource string
	QuestionsFile  string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
}

func Load() *Config {
	return &Config{
		WhatsAppToken:  getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID:  getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
		VerifyToken:    getEnv("VERIFY_TOKEN", "verify-token-change-me"),
		AppSecret:      getEnv("WHATSAPP_APP_SECRET", ""),
		AdminAPIKey:    getEnv("ADMIN_API_KEY", "admin-api-key-change-me"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		QuestionSource: getEnv("QUESTION_SOURCE", "excel"),
		QuestionsFile:  getEnv("QUESTIONS_FILE", "AEFI_Training_Sample.xlsx"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "quizbot"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
