package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Host           string
	Env            string // NODE_ENV, "production" enables SPA serving
	ClientBuildDir string
	LogLevel       string
	// CORS
	CORSAllowedOrigins []string
	// SMTP Configuration
	MailService  string // Well-known provider identifier (gmail, outlook, brevo, ...)
	SMTPHost     string // Overrides the provider host when set
	SMTPPort     int    // Overrides the provider port when non-zero
	SMTPSecure   bool   // Implicit TLS, only consulted when SMTPHost is set
	EmailUser    string
	EmailPass    string
	ContactEmail string // Recipient of every contact form submission
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; a missing file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "5000"),
		Host:               getEnv("HOST", "0.0.0.0"),
		Env:                getEnv("NODE_ENV", "development"),
		ClientBuildDir:     getEnv("CLIENT_BUILD_DIR", "client/build"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		// SMTP Configuration
		MailService: strings.ToLower(getEnv("EMAIL_SERVICE", "gmail")),
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnvInt("SMTP_PORT", 0),
		SMTPSecure:  getEnvBool("SMTP_SECURE", false),
		EmailUser:   getEnv("EMAIL_USER", ""),
		EmailPass:   getEnv("EMAIL_PASS", ""),
	}
	// Without an explicit recipient, messages go to the sending account itself
	cfg.ContactEmail = getEnv("CONTACT_EMAIL", cfg.EmailUser)

	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS not configured. Contact form submissions will fail to send.")
	}
	if cfg.ContactEmail == "" {
		log.Println("WARNING: CONTACT_EMAIL not configured. Contact form has no recipient.")
	}

	return cfg, nil
}

// IsProduction reports whether the prebuilt client should be served.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated environment variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
