package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	StateDSN string
	LogFile  string
	Upstream UpstreamConfig
	Console  ConsoleConfig
}

type UpstreamConfig struct {
	BaseURL      string
	Timeout      time.Duration
	DemoFallback bool
}

type ConsoleConfig struct {
	PasswordHash string // bcrypt; empty enables the logged dev default
	SessionTTL   time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file, using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("STATE_DSN")
	if dsn == "" {
		dsn = "optyshop-admin.db" // sqlite file in project root
	}
	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = "https://optyshop-frontend.hmstech.org/api"
	}

	timeout := 15 * time.Second
	if s := os.Getenv("HTTP_TIMEOUT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	demo := true
	if s := os.Getenv("DEMO_FALLBACK"); s != "" {
		demo = s != "0" && s != "false"
	}

	cfg := Config{
		Port:     port,
		StateDSN: dsn,
		LogFile:  os.Getenv("LOG_FILE"),
		Upstream: UpstreamConfig{
			BaseURL:      base,
			Timeout:      timeout,
			DemoFallback: demo,
		},
		Console: ConsoleConfig{
			PasswordHash: os.Getenv("CONSOLE_PASSWORD_HASH"),
			SessionTTL:   12 * time.Hour,
		},
	}
	log.Printf("[config] PORT=%s API_BASE_URL=%s STATE_DSN=%s DEMO_FALLBACK=%v",
		cfg.Port, cfg.Upstream.BaseURL, cfg.StateDSN, cfg.Upstream.DemoFallback)
	return cfg
}
