package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_PATH", "SECRET_KEY", "CREDENTIALS_FILE",
		"GOOGLE_API_KEY", "GEMINI_MODEL", "WEB_DIR", "TZ", "COOKIE_SECURE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("TZ", "UTC")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.CredentialsFile != "credentials.yaml" {
		t.Fatalf("expected default credentials file, got %q", cfg.CredentialsFile)
	}
	if cfg.GeminiModel != "gemini-pro" {
		t.Fatalf("expected default model gemini-pro, got %q", cfg.GeminiModel)
	}
	if cfg.SecretKey != "" {
		t.Fatalf("expected no secret key default, got %q", cfg.SecretKey)
	}
	if cfg.GoogleAPIKey != "" {
		t.Fatalf("expected no API key default, got %q", cfg.GoogleAPIKey)
	}
	if cfg.CookieSecure {
		t.Fatal("expected cookie secure to default off")
	}
	if cfg.Location == nil || cfg.Location.String() != "UTC" {
		t.Fatalf("expected UTC location, got %v", cfg.Location)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("DB_PATH", "elsewhere/health.db")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("TZ", "UTC")

	cfg := Load()
	if cfg.Port != "9191" {
		t.Fatalf("expected port from environment, got %q", cfg.Port)
	}
	if cfg.DBPath != "elsewhere/health.db" {
		t.Fatalf("expected db path from environment, got %q", cfg.DBPath)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected cookie secure enabled")
	}
}

func TestLoadLocationFallsBackToUTC(t *testing.T) {
	if loc := loadLocation("Not/AZone"); loc != nil && loc.String() != "UTC" {
		t.Fatalf("expected UTC fallback for bad zone, got %v", loc)
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		want     bool
	}{
		{name: "true", value: "true", fallback: false, want: true},
		{name: "one", value: "1", fallback: false, want: true},
		{name: "yes padded", value: " yes ", fallback: false, want: true},
		{name: "false", value: "false", fallback: true, want: false},
		{name: "off", value: "off", fallback: true, want: false},
		{name: "garbage keeps fallback", value: "maybe", fallback: true, want: true},
		{name: "empty keeps fallback", value: "", fallback: false, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("VITALE_TEST_BOOL", testCase.value)
			if got := getBoolEnv("VITALE_TEST_BOOL", testCase.fallback); got != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}
