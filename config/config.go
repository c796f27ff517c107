package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cropcast/logger"
)

type AppConfig struct {
	Env            string
	Port           string
	DBPath         string
	JWTSecret      string
	TokenTTL       time.Duration
	EnableDevLogin bool

	AIProvider     string // gemini|mock
	GoogleAIAPIKey string
	GenModel       string
	GenBaseURL     string

	WeatherAPIKey  string
	WeatherBaseURL string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() AppConfig {
	// .env is optional
	envErr := godotenv.Load()

	cfg := AppConfig{
		Env:            get("ENV", "development"),
		Port:           get("PORT", "8080"),
		DBPath:         get("DB_PATH", "cropcast.db"),
		JWTSecret:      get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:       parseDuration(get("TOKEN_TTL", "24h"), 24*time.Hour),
		EnableDevLogin: parseBool(get("ENABLE_DEV_LOGIN", "false")),
		AIProvider:     get("AI_PROVIDER", "gemini"),
		GoogleAIAPIKey: get("GOOGLE_AI_API_KEY", ""),
		GenModel:       get("GEN_MODEL", "gemini-2.0-flash"),
		GenBaseURL:     get("GEN_BASE_URL", ""),
		WeatherAPIKey:  get("WEATHER_API_KEY", ""),
		WeatherBaseURL: get("WEATHER_BASE_URL", "https://api.openweathermap.org"),
	}

	logger.Init(cfg.Env)
	if envErr != nil {
		logger.Debug("no .env file loaded", zap.Error(envErr))
	}
	logger.Info("config loaded",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.Bool("dev_login", cfg.EnableDevLogin),
		zap.String("ai_provider", cfg.AIProvider),
		zap.String("gen_model", cfg.GenModel),
		zap.Bool("gen_key_set", cfg.GoogleAIAPIKey != ""),
		zap.Bool("weather_key_set", cfg.WeatherAPIKey != ""),
	)
	return cfg
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
