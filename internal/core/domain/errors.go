package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheIO is returned when the cache file cannot be read or written.
	ErrCacheIO = zerr.New("cache I/O failed")

	// ErrCorruptCache is returned when the cache file exists but cannot be parsed.
	ErrCorruptCache = zerr.New("cache file is corrupt")

	// ErrMissingCache is returned in cache-only mode when no cache file exists.
	ErrMissingCache = zerr.New("no cache present and dump updates are disabled")

	// ErrInvalidCutoff is returned when a daily cutoff time cannot be parsed.
	ErrInvalidCutoff = zerr.New("invalid daily cutoff time, expected HH:MM:SS")

	// ErrMalformedExport is returned when the nations dump cannot be parsed.
	ErrMalformedExport = zerr.New("malformed nations dump")

	// ErrExportUnavailable is returned when the nations dump cannot be downloaded or opened.
	ErrExportUnavailable = zerr.New("nations dump unavailable")

	// ErrLiveQuery is returned when a membership query against the live API fails.
	ErrLiveQuery = zerr.New("live membership query failed")

	// ErrAPIRequestFailed is returned when a NationStates API request fails.
	ErrAPIRequestFailed = zerr.New("NationStates API request failed")

	// ErrAPIParseFailed is returned when a NationStates API response cannot be parsed.
	ErrAPIParseFailed = zerr.New("failed to parse NationStates API response")

	// ErrAuthFailed is returned when logging into the nation fails.
	ErrAuthFailed = zerr.New("could not log into your nation")

	// ErrSiteRequestFailed is returned when a request to the NationStates site fails.
	ErrSiteRequestFailed = zerr.New("NationStates site request failed")

	// ErrSiteError is returned when the NationStates site reports an error on the page.
	ErrSiteError = zerr.New("NationStates site error")

	// ErrLocalIDNotFound is returned when the settings page carries no localid token.
	ErrLocalIDNotFound = zerr.New("localid token not found on settings page")

	// ErrActionRejected is returned when an endorsement did not take effect.
	ErrActionRejected = zerr.New("endorsement rejected")

	// ErrResolverState is returned when a resolver operation is called out of order.
	ErrResolverState = zerr.New("resolver operation called out of order")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a required setting is missing or invalid.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMissingUserAgent is returned when no user agent is configured.
	ErrMissingUserAgent = zerr.New("you need to set the user agent")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
