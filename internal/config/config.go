// Package config loads the interpreter-wide tunables the design leaves as
// constants (decimal rounding precision for interned numbers, cache
// capacity hints) from a TOML project manifest.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables consumed by internal/runtime and internal/env.
type Config struct {
	Runtime RuntimeConfig `toml:"runtime"`
	Caches  CacheConfig   `toml:"caches"`
}

// RuntimeConfig controls instance interning and evaluation defaults.
type RuntimeConfig struct {
	// DecimalPrecision is the number of fractional digits a
	// wollok.lang.Number's baseInnerValue is rounded to before its
	// canonical string form becomes the interning key.
	DecimalPrecision uint `toml:"decimal_precision"`
}

// CacheConfig sizes the Environment's lazy lookup caches.
type CacheConfig struct {
	NodeCacheHint   uint `toml:"node_cache_hint"`
	ParentCacheHint uint `toml:"parent_cache_hint"`
}

// Default matches scenario 1: DECIMAL_PRECISION = 5, and modest cache
// capacity hints with no manifest present.
func Default() Config {
	return Config{
		Runtime: RuntimeConfig{DecimalPrecision: 5},
		Caches:  CacheConfig{NodeCacheHint: 64, ParentCacheHint: 64},
	}
}

// Load reads a Config from a TOML manifest at path, filling in defaults for
// any table or key the manifest omits.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
