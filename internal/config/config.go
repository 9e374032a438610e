// Package config loads runtime configuration for the engine and the dbtool.
//
// Resolution order, first hit wins:
//  1. process environment (after an optional .env / .env.local autoload)
//  2. optional YAML overlay file (CAREERSITE_CONFIG or ./config.yml)
//  3. OS keyring (service "careersite") for the two secrets
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "careersite"

const (
	keyringAccountDSN    = "database-url"
	keyringAccountSecret = "session-secret"
)

// databaseURLVars are checked in order; the first non-empty value wins.
// The alternates exist because Neon-provisioned deployments expose the
// connection string under different names.
var databaseURLVars = []string{"DATABASE_URL", "NEON_DATABASE_URL", "NEON_POSTGRES_URL"}

type Config struct {
	Port           int
	DatabaseURL    string
	SessionSecret  string
	CookieSecure   bool
	AllowedOrigins []string
}

// fileConfig is the optional YAML overlay. Secrets never live here.
type fileConfig struct {
	App struct {
		Port         int  `yaml:"port"`
		CookieSecure bool `yaml:"cookie_secure"`
	} `yaml:"app"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Load reads environment variables and returns a validated Config.
// Fail-fast: a missing database URL or session secret is a startup error.
func Load() (*Config, error) {
	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := &Config{Port: 8080}

	if path := overlayPath(); path != "" {
		if err := applyOverlay(cfg, path); err != nil {
			return nil, fmt.Errorf("config overlay %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT must be an integer, got %q", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cfg.CookieSecure = v == "1" || v == "true"
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	cfg.DatabaseURL = DatabaseURLFromEnv()
	if cfg.DatabaseURL == "" {
		if dsn, err := keyring.Get(KeyringService, keyringAccountDSN); err == nil && dsn != "" {
			cfg.DatabaseURL = dsn
		}
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("no database URL found: set DATABASE_URL, NEON_DATABASE_URL, or NEON_POSTGRES_URL, or store one with `dbtool secrets set-dsn`")
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		if s, err := keyring.Get(KeyringService, keyringAccountSecret); err == nil {
			cfg.SessionSecret = s
		}
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	return cfg, nil
}

// DatabaseURLFromEnv returns the first non-empty recognized database URL
// variable, or "".
func DatabaseURLFromEnv() string {
	for _, name := range databaseURLVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func overlayPath() string {
	if p := os.Getenv("CAREERSITE_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("config.yml"); err == nil {
		return "config.yml"
	}
	return ""
}

func applyOverlay(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return err
	}
	if fc.App.Port != 0 {
		cfg.Port = fc.App.Port
	}
	cfg.CookieSecure = fc.App.CookieSecure
	cfg.AllowedOrigins = fc.CORS.AllowedOrigins
	return nil
}

// StoreDSN saves the database URL in the OS keyring.
func StoreDSN(dsn string) error {
	if dsn == "" {
		return errors.New("database URL is empty")
	}
	return keyring.Set(KeyringService, keyringAccountDSN, dsn)
}

// ClearDSN removes the stored database URL from the OS keyring.
func ClearDSN() error {
	return keyring.Delete(KeyringService, keyringAccountDSN)
}
