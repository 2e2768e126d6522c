package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	TokenSecret  string
	TokenTTLDays int
	StripeKey    string
	LogFile      string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "bazar.db" // sqlite file in project root
	}
	secret := os.Getenv("ACCESS_TOKEN")
	if secret == "" {
		secret = "dev-only-access-token"
		log.Println("[config] ACCESS_TOKEN not set, using insecure dev secret")
	}
	ttl := 10
	if v := os.Getenv("TOKEN_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}

	cfg := Config{
		Port:         port,
		DBDSN:        dsn,
		TokenSecret:  secret,
		TokenTTLDays: ttl,
		StripeKey:    os.Getenv("STRIPE_KEY"),
		LogFile:      os.Getenv("LOG_FILE"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL_DAYS=%d", cfg.Port, cfg.DBDSN, cfg.TokenTTLDays)
	return cfg
}
