// Package geo wraps the external geolocation collaborator. The lookup has
// exactly three outcomes — coordinates, denied, unsupported — and callers are
// expected to degrade to a static fallback on either failure.
package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/esawctha/esawctha/internal/config"
	"github.com/esawctha/esawctha/internal/logger"
)

var (
	// ErrLocationDenied means the user declined location access.
	ErrLocationDenied = errors.New("location access denied")
	// ErrLocationUnsupported means the runtime environment cannot provide a
	// location (no endpoint configured, or the endpoint is unreachable).
	ErrLocationUnsupported = errors.New("location not supported")
)

//go:generate mockgen -source=locator.go -destination=../mock/geo_mock.go -package=mock

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lon"`
}

// Locator yields the client's coordinates or one of the two failure
// signals.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

type httpLocator struct {
	client   *resty.Client
	disabled bool
	endpoint string
	logger   *logger.Logger
}

// NewHTTPLocator constructs a [Locator] backed by an IP-geolocation HTTP
// endpoint. cfg.Disabled maps to the denied outcome; an empty endpoint maps
// to the unsupported outcome.
func NewHTTPLocator(cfg config.Geo, log *logger.Logger) Locator {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(timeout)

	return &httpLocator{
		client:   cli,
		disabled: cfg.Disabled,
		endpoint: cfg.Endpoint,
		logger:   log,
	}
}

// Locate resolves the client position. Network-level failures are collapsed
// into [ErrLocationUnsupported]: from the caller's point of view an
// unreachable provider and a missing capability degrade identically.
func (l *httpLocator) Locate(ctx context.Context) (Coordinates, error) {
	if l.disabled {
		return Coordinates{}, ErrLocationDenied
	}
	if l.endpoint == "" {
		return Coordinates{}, ErrLocationUnsupported
	}

	var coords Coordinates
	resp, err := l.client.R().
		SetContext(ctx).
		SetResult(&coords).
		Get("")
	if err != nil {
		l.logger.Err(err).Str("func", "httpLocator.Locate").Msg("geolocation request failed")
		return Coordinates{}, fmt.Errorf("%w: %v", ErrLocationUnsupported, err)
	}
	if resp.StatusCode() == http.StatusForbidden {
		return Coordinates{}, ErrLocationDenied
	}
	if resp.IsError() {
		return Coordinates{}, fmt.Errorf("%w: status %d", ErrLocationUnsupported, resp.StatusCode())
	}

	return coords, nil
}
