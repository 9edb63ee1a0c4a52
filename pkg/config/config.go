package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database  DatabaseConfig  `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Schedule  ScheduleConfig  `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
	Ingest    IngestConfig    `yaml:"ingest" json:"ingest" jsonschema:"description=Source ingestion configuration"`
	Feed      FeedConfig      `yaml:"feed" json:"feed" jsonschema:"description=Feed ranking configuration"`
	Providers ProvidersConfig `yaml:"providers" json:"providers" jsonschema:"description=Content provider clients"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen     string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL    string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feed links"`
	CronSecret string        `yaml:"cron_secret" json:"cron_secret" jsonschema:"description=Shared secret for the cron fetch endpoint (empty disables it)"`
}

// DatabaseConfig holds sqlite connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedmix.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// ScheduleConfig holds periodic ingestion settings
type ScheduleConfig struct {
	UpdateInterval int `yaml:"update_interval" json:"update_interval" jsonschema:"default=30,description=Source update interval in minutes"`
	MaxWorkers     int `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent source fetches"`
}

// IngestConfig holds per-source fetch settings
type IngestConfig struct {
	FetchTimeout     time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Timeout of a single adapter call"`
	RecentWindow     time.Duration `yaml:"recent_window" json:"recent_window" jsonschema:"default=72h,description=How far back a regular fetch looks for new content"`
	BacklogAfter     time.Duration `yaml:"backlog_after" json:"backlog_after" jsonschema:"default=168h,description=Backlog is fetched again when the last fetch is older than this"`
	RateLimitRetries int           `yaml:"rate_limit_retries" json:"rate_limit_retries" jsonschema:"default=3,minimum=1,description=Attempts for rate limited adapter calls"`
	RateLimitBackoff time.Duration `yaml:"rate_limit_backoff" json:"rate_limit_backoff" jsonschema:"default=1s,description=Initial backoff between rate limited attempts"`
}

// FeedConfig holds feed ranking and caching settings
type FeedConfig struct {
	Limit          int           `yaml:"limit" json:"limit" jsonschema:"default=50,minimum=1,description=Maximum items in a feed"`
	RecencyWindow  time.Duration `yaml:"recency_window" json:"recency_window" jsonschema:"default=168h,description=Items older than this count as backlog"`
	NotNowCooldown time.Duration `yaml:"not_now_cooldown" json:"not_now_cooldown" jsonschema:"default=72h,description=Not-now items stay hidden for this long"`
	CacheTTL       time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=5m,description=Computed feed cache lifetime"`
	CacheSize      int           `yaml:"cache_size" json:"cache_size" jsonschema:"default=1000,minimum=1,description=Maximum cached feeds"`
	CandidateLimit int           `yaml:"candidate_limit" json:"candidate_limit" jsonschema:"default=2000,minimum=1,description=Maximum candidates loaded per feed build"`
}

// ProvidersConfig holds adapter client settings
type ProvidersConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP client timeout for provider requests"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=feedmix/1.0,description=User agent for provider requests"`
	VideoA    VideoAConfig  `yaml:"video_a" json:"video_a" jsonschema:"description=Channel based video platform data api"`
	VideoB    VideoBConfig  `yaml:"video_b" json:"video_b" jsonschema:"description=User based video platform api"`
}

// VideoAConfig holds VIDEO_PLATFORM_A api settings
type VideoAConfig struct {
	BaseURL    string `yaml:"base_url" json:"base_url" jsonschema:"description=API base URL"`
	APIKey     string `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	MaxResults int    `yaml:"max_results" json:"max_results" jsonschema:"default=50,minimum=1,maximum=50,description=Page size"`
}

// VideoBConfig holds VIDEO_PLATFORM_B api settings
type VideoBConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url" jsonschema:"description=API base URL"`
	Token   string `yaml:"token" json:"token" jsonschema:"description=Bearer token (can use environment variable)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary, warn only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedmix.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// schedule
	if c.Schedule.UpdateInterval == 0 {
		c.Schedule.UpdateInterval = 30
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 5
	}

	// ingest
	if c.Ingest.FetchTimeout == 0 {
		c.Ingest.FetchTimeout = 30 * time.Second
	}
	if c.Ingest.RecentWindow == 0 {
		c.Ingest.RecentWindow = 72 * time.Hour
	}
	if c.Ingest.BacklogAfter == 0 {
		c.Ingest.BacklogAfter = 7 * 24 * time.Hour
	}
	if c.Ingest.RateLimitRetries == 0 {
		c.Ingest.RateLimitRetries = 3
	}
	if c.Ingest.RateLimitBackoff == 0 {
		c.Ingest.RateLimitBackoff = time.Second
	}

	// feed
	if c.Feed.Limit == 0 {
		c.Feed.Limit = 50
	}
	if c.Feed.RecencyWindow == 0 {
		c.Feed.RecencyWindow = 7 * 24 * time.Hour
	}
	if c.Feed.NotNowCooldown == 0 {
		c.Feed.NotNowCooldown = 72 * time.Hour
	}
	if c.Feed.CacheTTL == 0 {
		c.Feed.CacheTTL = 5 * time.Minute
	}
	if c.Feed.CacheSize == 0 {
		c.Feed.CacheSize = 1000
	}
	if c.Feed.CandidateLimit == 0 {
		c.Feed.CandidateLimit = 2000
	}

	// providers
	if c.Providers.Timeout == 0 {
		c.Providers.Timeout = 30 * time.Second
	}
	if c.Providers.UserAgent == "" {
		c.Providers.UserAgent = "feedmix/1.0"
	}
	if c.Providers.VideoA.MaxResults == 0 {
		c.Providers.VideoA.MaxResults = 50
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Schedule.UpdateInterval < 1 {
		return fmt.Errorf("schedule.update_interval must be at least 1 minute")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}
	if cfg.Ingest.FetchTimeout < time.Second {
		return fmt.Errorf("ingest.fetch_timeout must be at least 1 second")
	}
	if cfg.Ingest.RateLimitRetries < 1 {
		return fmt.Errorf("ingest.rate_limit_retries must be at least 1")
	}
	if cfg.Feed.Limit < 1 {
		return fmt.Errorf("feed.limit must be at least 1")
	}
	if cfg.Feed.CacheSize < 1 {
		return fmt.Errorf("feed.cache_size must be at least 1")
	}
	if cfg.Feed.CandidateLimit < cfg.Feed.Limit {
		return fmt.Errorf("feed.candidate_limit must not be less than feed.limit")
	}
	if cfg.Feed.NotNowCooldown < 0 || cfg.Feed.RecencyWindow < 0 || cfg.Feed.CacheTTL < 0 {
		return fmt.Errorf("feed durations must be non-negative")
	}
	if mr := cfg.Providers.VideoA.MaxResults; mr < 1 || mr > 50 {
		return fmt.Errorf("providers.video_a.max_results must be between 1 and 50")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetCronSecret returns shared secret of the cron endpoint
func (c *Config) GetCronSecret() string {
	return c.Server.CronSecret
}

// Secrets returns configured credentials to be masked in logs
func (c *Config) Secrets() []string {
	var res []string
	for _, s := range []string{c.Server.CronSecret, c.Providers.VideoA.APIKey, c.Providers.VideoB.Token} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}
