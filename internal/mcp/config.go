package mcp

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ConfigFromEnv
const (
	EnvDBPath     = "PHYSIOSEARCH_DB_PATH"
	EnvCatalogDir = "PHYSIOSEARCH_CATALOG_DIR"
	EnvCacheSize  = "PHYSIOSEARCH_CACHE_SIZE"
)

// ConfigFromEnv builds a Config from the environment, applying defaults
// for unset values
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		DBPath:     strings.TrimSpace(os.Getenv(EnvDBPath)),
		CatalogDir: strings.TrimSpace(os.Getenv(EnvCatalogDir)),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}

	if raw := strings.TrimSpace(os.Getenv(EnvCacheSize)); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvCacheSize, raw)
		}
		cfg.CacheSize = size
	}

	return cfg, nil
}
