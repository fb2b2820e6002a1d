package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultBatchSize        = 50
	defaultWorkers          = 4
	defaultIdleInterval     = 5 * time.Second
	defaultStaleAfter       = 10 * time.Minute
	defaultRecoveryInterval = time.Minute
	defaultMaxRetries       = 3
	defaultGatewayTimeout   = 10 * time.Second
	defaultRateLimit        = 50
	defaultRetention        = 30 * 24 * time.Hour
	defaultDedupTTL         = 10 * time.Minute
	defaultSlowThreshold    = 200 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes the GORM session on top of the Postgres connection
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	// Queue tunes the notification queue processor
	Queue *QueueConfig `json:"queue" yaml:"queue"`

	// Gateway selects the push gateway implementation
	Gateway *GatewayConfig `json:"gateway" yaml:"gateway"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for social event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Dedup configuration for Pub/Sub push redelivery
	Dedup *DedupConfig `json:"dedup" yaml:"dedup"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type SecretKey struct {
	Access string `json:"access" yaml:"access"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines GORM session behaviour
type DatabaseConfig struct {
	// Queries slower than this are logged at warn level
	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"`

	// Run schema migrations on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// QueueConfig defines the queue processor behaviour
type QueueConfig struct {
	// Number of due entries selected per pass
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Concurrent workers per process, each holding at most one claim
	Workers int `json:"workers" yaml:"workers"`

	// Sleep between passes when nothing was due
	IdleInterval time.Duration `json:"idleInterval" yaml:"idleInterval"`

	// Processing entries older than this are returned to pending
	StaleAfter time.Duration `json:"staleAfter" yaml:"staleAfter"`

	// How often the daemon runs the stale sweep
	RecoveryInterval time.Duration `json:"recoveryInterval" yaml:"recoveryInterval"`

	// Default max_retries for new entries. Nil means unset, so 0 can be configured
	DefaultMaxRetries *int `json:"defaultMaxRetries" yaml:"defaultMaxRetries"`

	// Upper bound for a single gateway call
	GatewayTimeout time.Duration `json:"gatewayTimeout" yaml:"gatewayTimeout"`

	// Gateway calls per second across all workers of the process
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	RateBurst int     `json:"rateBurst" yaml:"rateBurst"`

	// Terminal entries older than this are removed by purge
	Retention time.Duration `json:"retention" yaml:"retention"`
}

// MaxRetries returns the configured default retry budget, falling back to
// the built-in default when the key was never set.
func (q *QueueConfig) MaxRetries() int {
	if q.DefaultMaxRetries == nil {
		return defaultMaxRetries
	}

	return *q.DefaultMaxRetries
}

// GatewayConfig selects the push gateway
type GatewayConfig struct {
	// Provider type: "firebase" or "log" for development
	Provider string `json:"provider" yaml:"provider"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// DedupConfig controls how long Pub/Sub message IDs are remembered
type DedupConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// envPrefix scopes overrides so unrelated process variables never reach the decoder.
const envPrefix = "BEACON_"

// configDirs are searched in order, relative to the working directory, so the
// binaries and package tests find the same file.
var configDirs = []string{defaultPath, "config", "../config", "../../config"}

// New loads config/config.yaml, overlays BEACON_* environment variables and
// fills defaults. BEACON_QUEUE_BATCHSIZE sets queue.batchSize.
func New() (*Config, error) {
	path, err := locateConfigFile("config.yaml", configDirs)
	if err != nil {
		return nil, err
	}

	cfg, err := load[Config](path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if replicas := buildReplicasFromEnv(); len(replicas) > 0 && cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicas
	}

	return cfg, nil
}

func locateConfigFile(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %v", name, dirs)
}

// load decodes the YAML file at path into T with the prefixed environment on top.
func load[T any](path string) (*T, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fileKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(key, envPrefix), fileKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

// applyDefaults fills unset sections so the rest of the code never nil-checks them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowThreshold <= 0 {
		cfg.Database.SlowThreshold = defaultSlowThreshold
	}

	if cfg.Queue == nil {
		cfg.Queue = &QueueConfig{}
	}
	q := cfg.Queue
	if q.BatchSize <= 0 {
		q.BatchSize = defaultBatchSize
	}
	if q.Workers <= 0 {
		q.Workers = defaultWorkers
	}
	if q.IdleInterval <= 0 {
		q.IdleInterval = defaultIdleInterval
	}
	if q.StaleAfter <= 0 {
		q.StaleAfter = defaultStaleAfter
	}
	if q.RecoveryInterval <= 0 {
		q.RecoveryInterval = defaultRecoveryInterval
	}
	if q.DefaultMaxRetries == nil || *q.DefaultMaxRetries < 0 {
		retries := defaultMaxRetries
		q.DefaultMaxRetries = &retries
	}
	if q.GatewayTimeout <= 0 {
		q.GatewayTimeout = defaultGatewayTimeout
	}
	if q.RateLimit <= 0 {
		q.RateLimit = defaultRateLimit
	}
	if q.RateBurst <= 0 {
		// A burst below one token makes every limiter wait fail.
		q.RateBurst = max(1, int(math.Ceil(q.RateLimit)))
	}
	if q.Retention <= 0 {
		q.Retention = defaultRetention
	}

	if cfg.Gateway == nil {
		cfg.Gateway = &GatewayConfig{}
	}
	if cfg.Gateway.Provider == "" {
		cfg.Gateway.Provider = "firebase"
	}

	if cfg.Dedup == nil {
		cfg.Dedup = &DedupConfig{}
	}
	if cfg.Dedup.TTL <= 0 {
		cfg.Dedup.TTL = defaultDedupTTL
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads BEACON_POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := envPrefix + "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
