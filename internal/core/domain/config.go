package domain

// RefreshMode selects where the already-endorsed set comes from when the cache is stale.
type RefreshMode uint8

const (
	// ModeExport rebuilds a missing or stale cache from the nations dump.
	ModeExport RefreshMode = iota
	// ModeCacheOnly always trusts the cache and never reads the dump.
	ModeCacheOnly
)

// String returns the mode name.
func (m RefreshMode) String() string {
	if m == ModeCacheOnly {
		return "cache-only"
	}
	return "export"
}

// Profile identifies the operator's nation and its region of interest.
type Profile struct {
	Nation    Identifier
	Region    Identifier
	UserAgent string
}

// ExportLocation describes where the nations dump lives locally and upstream.
type ExportLocation struct {
	Path      string
	URL       string
	UserAgent string
}

// Config is the fully resolved runtime configuration.
type Config struct {
	Profile     Profile
	Password    string
	CachePath   string
	Cutoff      DailyCutoff
	Mode        RefreshMode
	Export      ExportLocation
	FullScan    bool
	MetricsFile string
}
