package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validBase returns a config that passes validation on its own.
func validBase() *Config {
	return &Config{Storage: Storage{DB: DB{DSN: "esawctha.db"}}}
}

// ── newConfigBuilder / build ──────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBase(),
		&Config{App: App{Version: "1.0.0"}},
		&Config{App: App{SubmitDelay: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, time.Second, cfg.App.SubmitDelay)
	assert.Equal(t, "esawctha.db", cfg.Storage.DB.DSN)
}

func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Storage: Storage{DB: DB{DSN: "from-env.db"}}},
		&Config{Storage: Storage{DB: DB{DSN: "from-json.db"}}, App: App{Version: "9"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "9", cfg.App.Version)
}

func TestWithDefaults_OnlyFillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Storage: Storage{DB: DB{DSN: "explicit.db"}}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "explicit.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, cfg.Geo.RequestTimeout)

	cfg, err = newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "esawctha.db", cfg.Storage.DB.DSN)
}

// ── env source ────────────────────────────────────────────────────────────────

func TestWithEnv_ParsesVariables(t *testing.T) {
	t.Setenv("APP_SUBMIT_DELAY", "750ms")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("GEO_ENDPOINT", "https://geo.example")
	t.Setenv("GEO_REQUEST_TIMEOUT", "3s")
	t.Setenv("GEO_DISABLED", "true")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	cfg := b.configs[0]
	assert.Equal(t, 750*time.Millisecond, cfg.App.SubmitDelay)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://geo.example", cfg.Geo.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Geo.RequestTimeout)
	assert.True(t, cfg.Geo.Disabled)
}

func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_SUBMIT_DELAY", "not-a-duration")

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── json source ───────────────────────────────────────────────────────────────

func TestWithJSON_MergedLast(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"submit_delay": "1s", "version": "0.3.0"},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "json.db"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: path})
	b = b.withJSON()
	require.NoError(t, b.err)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.App.SubmitDelay)
	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: "/no/such/file.json"})
	b = b.withJSON()
	require.Error(t, b.err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"500ms"`)))
	assert.Equal(t, Duration(500*time.Millisecond), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	require.Error(t, d.UnmarshalJSON([]byte(`"nope"`)))
	require.Error(t, d.UnmarshalJSON([]byte(`true`)))
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid minimal",
			cfg:  *validBase(),
		},
		{
			name:    "empty dsn",
			cfg:     Config{},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn breaks session restore",
			cfg:     Config{Storage: Storage{DB: DB{DSN: "file::memory:?cache=shared"}}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "negative submit delay",
			cfg: Config{
				Storage: Storage{DB: DB{DSN: "a.db"}},
				App:     App{SubmitDelay: -time.Second},
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "geo endpoint without timeout",
			cfg: Config{
				Storage: Storage{DB: DB{DSN: "a.db"}},
				Geo:     Geo{Endpoint: "https://geo.example"},
			},
			wantErr: ErrInvalidGeoConfigs,
		},
		{
			name: "geo endpoint with timeout",
			cfg: Config{
				Storage: Storage{DB: DB{DSN: "a.db"}},
				Geo:     Geo{Endpoint: "https://geo.example", RequestTimeout: time.Second},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
