package domain

import "path/filepath"

const (
	// StateDirName is the name of the directory holding endotarter's local state.
	StateDirName = ".endotarter"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// DumpFileName is the file name of the downloaded nations dump.
	DumpFileName = "nations.xml.gz"

	// ConfigFileName is the default configuration file name.
	ConfigFileName = "endotarter.yaml"

	// DefaultDumpURL is where NationStates publishes the daily nations dump.
	DefaultDumpURL = "https://www.nationstates.net/pages/nations.xml.gz"

	// DefaultDailyDumpUpdateTime is the UTC time of day at which the dump is regenerated.
	DefaultDailyDumpUpdateTime = "06:30:00"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCacheDir returns the default directory for cache files.
// It joins .endotarter and cache.
func DefaultCacheDir() string {
	return filepath.Join(StateDirName, CacheDirName)
}

// DefaultDumpPath returns the default path of the downloaded nations dump.
func DefaultDumpPath() string {
	return filepath.Join(StateDirName, DumpFileName)
}
