package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del servicio (todo por env).
type Config struct {
	Port string

	// DB_DSN vacío => repos in-memory.
	DatabaseDSN string

	Redis RedisConfig
	Auth  AuthConfig
	Log   LogConfig

	Insights InsightsConfig
}

type RedisConfig struct {
	Addr     string // vacío => sin cache
	Password string
	DB       int
	TTL      time.Duration
}

type AuthConfig struct {
	// JWT_SECRET vacío => modo dev (X-Debug-User-ID).
	JWTSecret string
	JWTIssuer string
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type InsightsConfig struct {
	WindowDays       int
	DensityThreshold float64
	FreeTextMaxChars int
}

// Load lee .env (si existe) y luego variables de entorno con defaults.
func Load() Config {
	// .env es opcional; en prod las vars vienen del entorno.
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: strings.TrimSpace(os.Getenv("DB_DSN")),
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
			TTL:      time.Duration(getenvInt("INSIGHTS_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			JWTIssuer: os.Getenv("JWT_ISSUER"),
		},
		Log: LogConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "text"),
			App:    getenv("APP_NAME", "pet-health-journal"),
		},
		Insights: InsightsConfig{
			WindowDays:       getenvInt("TREND_WINDOW_DAYS", 7),
			DensityThreshold: getenvFloat("DENSITY_THRESHOLD", 0.70),
			FreeTextMaxChars: getenvInt("FREE_TEXT_MAX_CHARS", 2000),
		},
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
