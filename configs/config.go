package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	APIBaseURL string
	DBSource   string
	JWTSecret  string
	JWTTTL     time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:       getEnv("PORT", "3000"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
		DBSource:   getEnv("DB_SOURCE", "terminal.db"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		JWTTTL:     time.Duration(12) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
