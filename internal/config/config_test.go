package config

import "testing"

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/careersite")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("Port = %d, want 9090", cfg.Port)
	}
	if !cfg.CookieSecure {
		t.Fatalf("CookieSecure = false, want true")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://admin.example.com" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/careersite")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("PORT", "eighty")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric PORT")
	}
}

func TestDatabaseURLFromEnvPriority(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("NEON_DATABASE_URL", "postgres://neon-primary")
	t.Setenv("NEON_POSTGRES_URL", "postgres://neon-alt")

	if got := DatabaseURLFromEnv(); got != "postgres://neon-primary" {
		t.Fatalf("DatabaseURLFromEnv() = %q, want the first non-empty variable", got)
	}

	t.Setenv("DATABASE_URL", "postgres://explicit")
	if got := DatabaseURLFromEnv(); got != "postgres://explicit" {
		t.Fatalf("DatabaseURLFromEnv() = %q, DATABASE_URL must win", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, b ,, c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("splitList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitList() = %v, want %v", got, want)
		}
	}
}
