package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	Port string
	Env  string

	MongoURI string
	MongoDB  string

	RedisAddress    string
	RedisPassword   string
	SubmitRateLimit int

	MailServer   string
	MailPort     int
	MailUsername string
	MailPassword string
	AdminEmail   string
	SystemEmail  string

	JWTSecret string

	AllowedOrigins []string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() *Config {
	systemEmail := getenv("SYSTEM_EMAIL", "alerts@disaster-alert.local")

	return &Config{
		Port: getenv("PORT", "8080"),
		Env:  getenv("GO_ENV", "development"),

		MongoURI: getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGO_DB", "disaster_alert_db"),

		RedisAddress:    strings.TrimSpace(os.Getenv("REDIS_ADDRESS")),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		SubmitRateLimit: getenvInt("SUBMIT_RATE_LIMIT", 20),

		MailServer:   getenv("MAIL_SERVER", "smtp.gmail.com"),
		MailPort:     getenvInt("MAIL_PORT", 587),
		MailUsername: getenv("MAIL_USERNAME", systemEmail),
		MailPassword: os.Getenv("MAIL_PASSWORD"),
		AdminEmail:   getenv("ADMIN_EMAIL", systemEmail),
		SystemEmail:  systemEmail,

		JWTSecret: os.Getenv("JWT_SECRET"),

		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
