package config

import "strings"

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// The local database must live in a file: persisted users and the current
// session have to survive process restarts, so an in-memory DSN would break
// session restoration.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SubmitDelay < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Geo.Endpoint != "" && cfg.Geo.RequestTimeout == 0 {
		return ErrInvalidGeoConfigs
	}

	return nil
}
