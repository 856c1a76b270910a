package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource        string
	Port            string
	JWTSecret       string
	JWTTTL          time.Duration
	RedisAddr       string
	UpstreamBaseURL string
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "swiggy.db"),
		Port:            getEnv("PORT", "4000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          7 * 24 * time.Hour,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "https://www.swiggy.com"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
