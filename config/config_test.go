package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Router.Threshold != 0.5 || cfg.Router.Lookahead != 3 {
		t.Errorf("unexpected router heuristics: %+v", cfg.Router)
	}
	if cfg.Router.BaseTime != 30*time.Second {
		t.Errorf("expected base time 30s, got %s", cfg.Router.BaseTime)
	}
	if cfg.Load.Timeout != 50*time.Millisecond {
		t.Errorf("expected load timeout 50ms, got %s", cfg.Load.Timeout)
	}
	if cfg.Router.DefaultStrategy != "intelligent" {
		t.Errorf("expected intelligent default strategy, got %q", cfg.Router.DefaultStrategy)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ROUTER_LOOKAHEAD", "5")
	t.Setenv("RATE_LIMIT_PER_MIN", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Router.Lookahead != 5 {
		t.Errorf("expected lookahead 5, got %d", cfg.Router.Lookahead)
	}
	if cfg.RateLimit.PerMin != 42 {
		t.Errorf("expected rate limit 42, got %d", cfg.RateLimit.PerMin)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown load mode", "LOAD_MODE", "carrier_pigeon"},
		{"threshold above one", "ROUTER_THRESHOLD", "1.5"},
		{"zero threshold", "ROUTER_THRESHOLD", "0"},
		{"alpha above one", "ROUTER_HYBRID_ALPHA", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}
