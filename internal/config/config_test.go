package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesScenarioOne(t *testing.T) {
	cfg := Default()
	if cfg.Runtime.DecimalPrecision != 5 {
		t.Fatalf("expected default decimal precision 5, got %d", cfg.Runtime.DecimalPrecision)
	}
}

func TestLoadFillsInDefaultsForOmittedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.toml")
	if err := os.WriteFile(path, []byte("[runtime]\ndecimal_precision = 2\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Runtime.DecimalPrecision != 2 {
		t.Fatalf("expected overridden precision 2, got %d", cfg.Runtime.DecimalPrecision)
	}
	if cfg.Caches.NodeCacheHint != 64 {
		t.Fatalf("expected default node cache hint 64 to survive, got %d", cfg.Caches.NodeCacheHint)
	}
}

func TestLoadRejectsMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed TOML")
	}
}
