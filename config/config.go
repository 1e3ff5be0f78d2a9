package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	LLM       LLM
	Redis     Redis
	RateLimit RateLimit
	Log       Log
}

type Server struct {
	Port           string
	Mode           string
	AllowedOrigins []string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type LLM struct {
	Provider     string // "gemini" or "groq"
	GeminiApiKey string
	GeminiModel  string
	GroqApiKey   string
	GroqModel    string
	GroqBaseURL  string
	Timeout      time.Duration
	CacheTTL     time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type RateLimit struct {
	MaxRequests int
	Window      time.Duration
}

type Log struct {
	Level string
	File  string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.LLM.Provider = strings.ToLower(viper.GetString("LLM_PROVIDER"))
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.LLM.GroqApiKey = viper.GetString("GROQ_API_KEY")
	config.LLM.GroqModel = viper.GetString("GROQ_MODEL")
	config.LLM.GroqBaseURL = viper.GetString("GROQ_BASE_URL")
	config.LLM.Timeout = viper.GetDuration("LLM_TIMEOUT")
	config.LLM.CacheTTL = viper.GetDuration("LLM_CACHE_TTL")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.RateLimit.MaxRequests = viper.GetInt("RATE_LIMIT_MAX_REQUESTS")
	config.RateLimit.Window = viper.GetDuration("RATE_LIMIT_WINDOW")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.File = viper.GetString("LOG_FILE")

	// API keys and passwords stay out of the log.
	log.Info().
		Str("port", config.Server.Port).
		Str("mode", config.Server.Mode).
		Str("dbHost", config.Database.Host).
		Str("dbName", config.Database.Name).
		Str("llmProvider", config.LLM.Provider).
		Bool("geminiKeySet", config.LLM.GeminiApiKey != "").
		Bool("groqKeySet", config.LLM.GroqApiKey != "").
		Str("redisAddr", config.Redis.Addr).
		Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("LLM_TIMEOUT", "60s")
	viper.SetDefault("LLM_CACHE_TTL", "24h")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW", "1m")
	viper.SetDefault("LOG_LEVEL", "info")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
