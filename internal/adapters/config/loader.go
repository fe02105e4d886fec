// Package config provides the configuration loader for endotarter.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file overlaid by environment variables.
type Loader struct {
	Logger ports.Logger
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the file at path, applies environment overrides and validates the result.
func (l *Loader) Load(path string) (*domain.Config, error) {
	raw := defaults()

	if err := l.readFile(path, &raw); err != nil {
		return nil, err
	}

	opts := env.Options{Prefix: envPrefix, Environment: l.Environment}
	if err := env.ParseWithOptions(&raw, opts); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "source", "environment")
	}

	return l.resolve(&raw)
}

func (l *Loader) readFile(path string, raw *File) error {
	//nolint:gosec // Path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	if err := yaml.Unmarshal(data, raw); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	if raw.Password != "" {
		l.warnIfShared(path)
	}
	return nil
}

// warnIfShared warns when a config file holding a password is readable by other users.
func (l *Loader) warnIfShared(path string) {
	info, err := os.Stat(path)
	if err != nil || l.Logger == nil {
		return
	}
	if info.Mode().Perm()&0o077 != 0 {
		l.Logger.Warn(fmt.Sprintf("%s contains a password but is readable by other users; consider chmod 600", path))
	}
}

func (l *Loader) resolve(raw *File) (*domain.Config, error) {
	nation := domain.Canonical(strings.TrimSpace(raw.Nation))
	region := domain.Canonical(strings.TrimSpace(raw.Region))

	if nation == "" {
		return nil, missing("nation")
	}
	if region == "" {
		return nil, missing("region")
	}
	if strings.TrimSpace(raw.UserAgent) == "" {
		return nil, domain.ErrMissingUserAgent
	}

	cutoff, err := domain.ParseDailyCutoff(raw.Cache.DailyDumpUpdateTime)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInvalidConfig, err), "field", "cache.daily_dump_update_time")
	}

	mode := domain.ModeExport
	if !raw.Cache.UpdateFromDump {
		mode = domain.ModeCacheOnly
	}

	cachePath := raw.Cache.Path
	if cachePath == "" {
		cachePath = DefaultCachePath(nation, region)
	}

	return &domain.Config{
		Profile: domain.Profile{
			Nation:    nation,
			Region:    region,
			UserAgent: raw.UserAgent,
		},
		Password:  raw.Password,
		CachePath: cachePath,
		Cutoff:    cutoff,
		Mode:      mode,
		Export: domain.ExportLocation{
			Path:      raw.Dump.Path,
			URL:       raw.Dump.URL,
			UserAgent: raw.UserAgent,
		},
		FullScan:    raw.Dump.FullScan,
		MetricsFile: raw.MetricsFile,
	}, nil
}

// DefaultCachePath returns the cache file used for a nation and region pair.
// Each pair gets its own file so switching nations never mixes endorsement histories.
func DefaultCachePath(nation, region domain.Identifier) string {
	sum := xxhash.Sum64String(nation.String() + "@" + region.String())
	return filepath.Join(domain.DefaultCacheDir(), fmt.Sprintf("%s-%016x.json", nation, sum))
}

func missing(field string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "required setting is empty"), "field", field)
}
