package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Sheets   SheetsConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SheetsConfig struct {
	AttachmentsDir  string
	OutputDir       string
	RenderWindow    int // max applicants rendered in flight
	CacheTTLMinutes int
	ProgressTopic   string
	ReportEmail     string // empty disables the run-report mail
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Sheets: SheetsConfig{
			AttachmentsDir:  getEnv("SHEETS_ATTACHMENTS_DIR", "./uploads/registrations"),
			OutputDir:       getEnv("SHEETS_OUTPUT_DIR", "./output/sheets"),
			RenderWindow:    getEnvAsInt("SHEETS_RENDER_WINDOW", 4),
			CacheTTLMinutes: getEnvAsInt("SHEETS_CACHE_TTL_MINUTES", 15),
			ProgressTopic:   getEnv("SHEETS_PROGRESS_TOPIC", "SHEET_RUN_PROGRESS"),
			ReportEmail:     getEnv("SHEETS_REPORT_EMAIL", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Fichas"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
