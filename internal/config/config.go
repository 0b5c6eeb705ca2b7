package config

import (
	"time"
)

const (
	// defaultDatabaseDSN is the local database file used when no source
	// provides one. A plain file name resolves next to the working directory.
	defaultDatabaseDSN = "esawctha.db"

	// defaultGeoTimeout bounds geolocation lookups when an endpoint is set
	// without an explicit timeout.
	defaultGeoTimeout = 5 * time.Second
)

// Config is the top-level configuration container for the e-sawctha
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the simulated submit
	// latency and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Geo holds configuration for the external geolocation collaborator.
	Geo Geo `envPrefix:"GEO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SubmitDelay is the cosmetic latency applied to form submissions to
	// simulate a network round-trip. Zero disables the delay; correctness
	// never depends on it.
	// Env: APP_SUBMIT_DELAY
	SubmitDelay time.Duration `env:"SUBMIT_DELAY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that stands in
// for browser local storage.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "esawctha.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Geo holds settings for the geolocation lookup used by the waste-center
// finder. The lookup is a consumed collaborator: it may succeed, be declined
// by the user, or be unsupported, and every outcome degrades to a static
// fallback dataset.
type Geo struct {
	// Endpoint is the IP-geolocation HTTP endpoint. Empty means the
	// capability is unsupported in this environment.
	// Env: GEO_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds a single lookup request (e.g. "5s").
	// Env: GEO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Disabled records that the user declined location access. Lookups then
	// resolve to the denied outcome without touching the network.
	// Env: GEO_DISABLED
	Disabled bool `env:"DISABLED"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults, filling whatever is still unset
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
