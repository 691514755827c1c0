package config

import (
	"errors"
	"os"
	"regexp"
	"strings"
)

// Config is everything the process reads from the environment, loaded once at
// startup and handed to the pieces that need it.
type Config struct {
	Port              string
	DBURL             string
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
	AllowedOrigins    []string
	StaticDir         string
	Production        bool
}

// Load reads the configuration from the environment. Only DB_URL is
// mandatory; auth misconfiguration is reported at login time so the rest of
// the API stays inspectable.
func Load() (Config, error) {
	cfg := Config{
		Port:              os.Getenv("PORT"),
		DBURL:             os.Getenv("DB_URL"),
		AdminEmail:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		StaticDir:         os.Getenv("STATIC_DIR"),
		Production:        os.Getenv("APP_ENV") == "production",
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBURL == "" {
		return Config{}, errors.New("DB_URL is required")
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}
	return cfg, nil
}

// HasAdminCredentials reports whether login can work at all.
func (c Config) HasAdminCredentials() bool {
	return c.AdminEmail != "" && (c.AdminPassword != "" || c.AdminPasswordHash != "")
}

var dsnCredentials = regexp.MustCompile(`://[^@/]+@`)

// RedactDSN strips credentials from a connection string before it appears in
// logs or health diagnostics.
func RedactDSN(dsn string) string {
	return dsnCredentials.ReplaceAllString(dsn, "://<redacted>@")
}
