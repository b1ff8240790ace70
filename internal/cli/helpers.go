// Package cli provides the command implementations for elasticomp.
package cli

import (
	"os"

	"github.com/elasticomp/elasticomp/internal/config"
	"github.com/elasticomp/elasticomp/internal/elasticluster"
	"github.com/elasticomp/elasticomp/internal/logger"
)

// toolName is the command elasticomp completes.
const toolName = "elasticluster"

// components holds initialized elasticomp components
type components struct {
	cfg     *config.Config
	cfgPath string
	log     *logger.Logger
	client  *elasticluster.Client
	cache   *elasticluster.TemplateCache
}

// initializeComponents resolves configuration and wires up the
// elasticluster client. It never fails: a broken config falls back to
// defaults, because completion must keep working regardless.
func initializeComponents(configPath, logLevel, cachePath string) *components {
	cfg, cfgPath := config.New().Resolve(configPath)

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	log := logger.New(level, os.Stderr)

	var cache *elasticluster.TemplateCache
	if cachePath != "" {
		cache = elasticluster.NewTemplateCache(cachePath, cfg.CacheTTLDuration())
	}

	client := elasticluster.NewClient(cfg.StorageDir,
		elasticluster.WithBinary(cfg.Binary),
		elasticluster.WithStorageSuffix(cfg.StorageSuffix),
		elasticluster.WithTimeout(cfg.TimeoutDuration()),
		elasticluster.WithTemplateCache(cache),
		elasticluster.WithLogger(log),
	)

	return &components{
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     log,
		client:  client,
		cache:   cache,
	}
}
