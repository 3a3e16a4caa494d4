package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if e.Interval != 300*time.Millisecond {
		t.Fatalf("expected default interval 300ms, got %v", e.Interval)
	}
	if e.MaxSteps != 1000 {
		t.Fatalf("expected default max steps 1000, got %d", e.MaxSteps)
	}
	if e.Engine != "base" {
		t.Fatalf("expected default engine base, got %q", e.Engine)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LIFEBOX_INTERVAL", "150ms")
	t.Setenv("LIFEBOX_ENGINE", "multithreaded")
	t.Setenv("LIFEBOX_TEMPLATE", "glider")
	t.Setenv("LIFEBOX_SEED", "42")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if e.Interval != 150*time.Millisecond || e.Engine != "multithreaded" || e.Template != "glider" || e.Seed != 42 {
		t.Fatalf("unexpected env %+v", e)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("LIFEBOX_INTERVAL", "soon")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
