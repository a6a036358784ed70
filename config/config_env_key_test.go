package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"offer": map[string]any{
			"sweepInterval": "1m",
		},
		"notification": map[string]any{
			"queueSize": 256,
			"smtp": map[string]any{
				"host": "",
			},
		},
		"store": map[string]any{
			"autoMigrate": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "OFFER_SWEEPINTERVAL", want: "offer.sweepInterval"},
		{envKey: "NOTIFICATION_QUEUESIZE", want: "notification.queueSize"},
		{envKey: "NOTIFICATION_SMTP_HOST", want: "notification.smtp.host"},
		{envKey: "STORE_AUTOMIGRATE", want: "store.autoMigrate"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Store)
	require.NotNil(t, cfg.Offer)
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Notification)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 72*time.Hour, cfg.Offer.TTL)
	assert.Zero(t, cfg.Offer.SweepInterval)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultNotificationQueue, cfg.Notification.QueueSize)
	assert.Equal(t, defaultNotificationWorker, cfg.Notification.Workers)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Nil(t, cfg.Mongo)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Store:   &StoreConfig{Driver: "mongo"},
		Offer:   &OfferConfig{TTL: time.Hour, SweepInterval: time.Minute},
		Mongo:   &MongoConfig{URI: "mongodb://localhost:27017"},
		Auth:    &AuthConfig{AccessTokenTTL: time.Minute},
		Metrics: &MetricsConfig{Enabled: true, Path: "/internal/metrics"},
	}

	applyDefaults(cfg)

	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, time.Hour, cfg.Offer.TTL)
	assert.Equal(t, time.Minute, cfg.Offer.SweepInterval)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultMongoTimeout, cfg.Mongo.Timeout)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
}

func validConfig() *Config {
	cfg := &Config{
		Postgres: &postgres.DBConn{},
		PubSub:   &PubSubConfig{Provider: "local"},
	}
	cfg.SecretKey.Access = "secret"
	applyDefaults(cfg)

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults with postgres",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "sqlite" },
			wantErr: `unknown store driver: "sqlite"`,
		},
		{
			name:    "postgres section missing",
			mutate:  func(cfg *Config) { cfg.Postgres = nil },
			wantErr: "requires a postgres section",
		},
		{
			name:    "mongo without uri",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "mongo" },
			wantErr: "requires mongo.uri",
		},
		{
			name: "mongo with uri",
			mutate: func(cfg *Config) {
				cfg.Store.Driver = "mongo"
				cfg.Mongo = &MongoConfig{URI: "mongodb://localhost:27017"}
			},
		},
		{
			name:    "empty secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = " " },
			wantErr: "secretKey.access must be set",
		},
		{
			name:    "negative sweep interval",
			mutate:  func(cfg *Config) { cfg.Offer.SweepInterval = -time.Second },
			wantErr: "must not be negative",
		},
		{
			name:    "unknown pubsub provider",
			mutate:  func(cfg *Config) { cfg.PubSub.Provider = "kafka" },
			wantErr: `unknown pubsub provider: "kafka"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
