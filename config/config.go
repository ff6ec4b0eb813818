package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	Debug          bool
	TrustedProxies []string
	AllowedOrigins []string

	// External enrollment backend and the community link offered after a
	// successful registration.
	EnrollAPIURL     string
	WhatsAppGroupURL string

	// How long the referral cookie survives, in seconds.
	ReferralCookieMaxAge int

	// Sliding-window rate limit on the enrollment endpoints.
	EnrollRateLimit  int
	EnrollRateWindow time.Duration

	// Optional staff notifications for new enrollments.
	TelegramBotToken string
	TelegramChatID   int64
}

func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Debug:          getEnvAsBool("DEBUG", true),
		TrustedProxies: []string{},
		AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		EnrollAPIURL:     getEnv("ENROLL_API_URL", "https://admin.studysmart.pro/academy/enroll"),
		WhatsAppGroupURL: getEnv("WHATSAPP_GROUP_URL", "https://wa.me/2348146020799?text=I%20just%20registered%20for%20a%20course"),

		ReferralCookieMaxAge: getEnvAsInt("REFERRAL_COOKIE_MAX_AGE", 180*24*60*60),

		EnrollRateLimit:  getEnvAsInt("ENROLL_RATE_LIMIT", 10),
		EnrollRateWindow: getEnvAsDuration("ENROLL_RATE_WINDOW", time.Minute),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		cfg.TrustedProxies = strings.Split(proxies, ",")
	}

	log.Printf("📋 Config loaded: port=%s, mode=%s, enrollURL=%s, telegramSet=%v",
		cfg.Port, cfg.Env, cfg.EnrollAPIURL, cfg.TelegramBotToken != "")
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	strVal := getEnv(key, "")
	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	strVal := getEnv(key, "")
	if val, err := strconv.Atoi(strVal); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	strVal := getEnv(key, "")
	if val, err := strconv.ParseInt(strVal, 10, 64); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	strVal := getEnv(key, "")
	if val, err := time.ParseDuration(strVal); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue
	}
	parts := strings.Split(val, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
