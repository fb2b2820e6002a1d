package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"queue": map[string]any{
			"batchSize":    50,
			"idleInterval": "5s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "QUEUE_BATCHSIZE", want: "queue.batchSize"},
		{envKey: "QUEUE_IDLEINTERVAL", want: "queue.idleInterval"},
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

func TestApplyDefaults_FillsQueueSection(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBatchSize, cfg.Queue.BatchSize)
	assert.Equal(t, defaultWorkers, cfg.Queue.Workers)
	assert.Equal(t, defaultIdleInterval, cfg.Queue.IdleInterval)
	assert.Equal(t, defaultStaleAfter, cfg.Queue.StaleAfter)
	require.NotNil(t, cfg.Queue.DefaultMaxRetries)
	assert.Equal(t, defaultMaxRetries, cfg.Queue.MaxRetries())
	assert.Equal(t, float64(defaultRateLimit), cfg.Queue.RateLimit)
	assert.Equal(t, defaultRateLimit, cfg.Queue.RateBurst)
	assert.Equal(t, "firebase", cfg.Gateway.Provider)
	assert.Equal(t, defaultDedupTTL, cfg.Dedup.TTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, defaultSlowThreshold, cfg.Database.SlowThreshold)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Queue: &QueueConfig{
			BatchSize:    10,
			Workers:      1,
			IdleInterval: 250 * time.Millisecond,
			RateLimit:    5,
		},
		Gateway: &GatewayConfig{Provider: "log"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 10, cfg.Queue.BatchSize)
	assert.Equal(t, 1, cfg.Queue.Workers)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.IdleInterval)
	assert.Equal(t, 5, cfg.Queue.RateBurst)
	assert.Equal(t, "log", cfg.Gateway.Provider)
}

func TestApplyDefaults_FractionalRateLimitKeepsUsableBurst(t *testing.T) {
	cfg := &Config{Queue: &QueueConfig{RateLimit: 0.5}}

	applyDefaults(cfg)

	assert.Equal(t, 1, cfg.Queue.RateBurst)

	limiter := rate.NewLimiter(rate.Limit(cfg.Queue.RateLimit), cfg.Queue.RateBurst)
	require.NoError(t, limiter.Wait(context.Background()))
}

func TestLoad_ZeroDefaultMaxRetriesIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  defaultMaxRetries: 0\n"), 0o600))

	cfg, err := load[Config](path)
	require.NoError(t, err)
	applyDefaults(cfg)

	require.NotNil(t, cfg.Queue.DefaultMaxRetries)
	assert.Equal(t, 0, cfg.Queue.MaxRetries())
}

func TestLoad_PrefixedEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  batchSize: 50\n  idleInterval: 5s\ngateway:\n  provider: firebase\n"), 0o600))

	t.Setenv("BEACON_QUEUE_BATCHSIZE", "7")
	t.Setenv("BEACON_QUEUE_IDLEINTERVAL", "250ms")
	t.Setenv("GATEWAY_PROVIDER", "log")

	cfg, err := load[Config](path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Queue.BatchSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.IdleInterval)
	assert.Equal(t, "firebase", cfg.Gateway.Provider)
}

func TestLocateConfigFile_NotFound(t *testing.T) {
	_, err := locateConfigFile("config.yaml", []string{t.TempDir()})
	assert.Error(t, err)
}
