package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative submit delay).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidGeoConfigs indicates invalid geolocation settings
	// (for example, an endpoint without a request timeout).
	ErrInvalidGeoConfigs = errors.New("invalid geo configuration")
)
