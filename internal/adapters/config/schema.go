package config

import "go.trai.ch/endotarter/internal/core/domain"

// envPrefix qualifies every environment variable read by the loader.
const envPrefix = "ENDOTARTER_"

// File is the on-disk configuration schema. Every field can be overridden by an
// environment variable named after its env tag, e.g. ENDOTARTER_PASSWORD.
type File struct {
	Nation      string       `yaml:"nation" env:"NATION"`
	Region      string       `yaml:"region" env:"REGION"`
	UserAgent   string       `yaml:"user_agent" env:"USER_AGENT"`
	Password    string       `yaml:"password" env:"PASSWORD"`
	Cache       CacheSection `yaml:"cache" envPrefix:"CACHE_"`
	Dump        DumpSection  `yaml:"dump" envPrefix:"DUMP_"`
	MetricsFile string       `yaml:"metrics_file" env:"METRICS_FILE"`
}

// CacheSection configures the endorsed-nations cache.
type CacheSection struct {
	Path                string `yaml:"path" env:"PATH"`
	DailyDumpUpdateTime string `yaml:"daily_dump_update_time" env:"DAILY_DUMP_UPDATE_TIME"`
	UpdateFromDump      bool   `yaml:"update_from_dump" env:"UPDATE_FROM_DUMP"`
}

// DumpSection configures where the nations dump is stored and fetched from.
type DumpSection struct {
	Path     string `yaml:"path" env:"PATH"`
	URL      string `yaml:"url" env:"URL"`
	FullScan bool   `yaml:"full_scan" env:"FULL_SCAN"`
}

// defaults returns the schema pre-filled with every optional setting.
func defaults() File {
	return File{
		Cache: CacheSection{
			DailyDumpUpdateTime: domain.DefaultDailyDumpUpdateTime,
			UpdateFromDump:      true,
		},
		Dump: DumpSection{
			Path: domain.DefaultDumpPath(),
			URL:  domain.DefaultDumpURL,
		},
	}
}
