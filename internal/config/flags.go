package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-submit-delay cosmetic form submission delay (e.g., "1s")
//	-geo-endpoint geolocation lookup endpoint URL
//	-geo-timeout geolocation request timeout (e.g., "5s")
//	-geo-disabled decline location access
func ParseFlags() *Config {
	var databaseDSN string
	var jsonConfigPath string
	var submitDelay time.Duration
	var geoEndpoint string
	var geoTimeout time.Duration
	var geoDisabled bool

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&submitDelay, "submit-delay", 0, "Form submission delay (e.g., 1s)")
	flag.StringVar(&geoEndpoint, "geo-endpoint", "", "Geolocation endpoint URL")
	flag.DurationVar(&geoTimeout, "geo-timeout", 0, "Geolocation request timeout (e.g., 5s)")
	flag.BoolVar(&geoDisabled, "geo-disabled", false, "Decline location access")

	flag.Parse()

	return &Config{
		App: App{
			SubmitDelay: submitDelay,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Geo: Geo{
			Endpoint:       geoEndpoint,
			RequestTimeout: geoTimeout,
			Disabled:       geoDisabled,
		},
		JSONFilePath: jsonConfigPath,
	}
}
