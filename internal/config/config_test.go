package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.Storage != "redis" {
		t.Errorf("expected default storage redis, got %q", cfg.Storage)
	}
	if cfg.Emulator {
		t.Error("expected emulator flag off by default")
	}
	if cfg.APIBaseURL != "" {
		t.Errorf("expected empty API base URL, got %q", cfg.APIBaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CART_STORAGE", "memory")
	t.Setenv("CART_EMULATOR", "true")
	t.Setenv("CART_API_BASE_URL", "http://catalog:3333")

	cfg := Load()

	if cfg.Storage != "memory" {
		t.Errorf("expected storage memory, got %q", cfg.Storage)
	}
	if !cfg.Emulator {
		t.Error("expected emulator flag on")
	}
	if cfg.APIBaseURL != "http://catalog:3333" {
		t.Errorf("expected overridden API base URL, got %q", cfg.APIBaseURL)
	}
}
