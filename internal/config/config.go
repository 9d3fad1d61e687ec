package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" toml:"server"`
	Database DatabaseConfig `yaml:"database" toml:"database"`
	Auth     AuthConfig     `yaml:"auth" toml:"auth"`
	Log      LogConfig      `yaml:"log" toml:"log"`
	CORS     CORSConfig     `yaml:"cors" toml:"cors"`
	Redis    RedisConfig    `yaml:"redis" toml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka" toml:"kafka"`
	Timeline TimelineConfig `yaml:"timeline" toml:"timeline"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins" toml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods" toml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers" toml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Authorization,Content-Type,X-Timezone,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" toml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age" toml:"max_age" env:"CORS_MAX_AGE" env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host" toml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" toml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" toml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" toml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" toml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit" toml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"20"`
	OAuthRateLimit  int           `yaml:"oauth_rate_limit" toml:"oauth_rate_limit" env:"SERVER_OAUTH_RATE_LIMIT" env-default:"10"`
	RateCleanup     time.Duration `yaml:"rate_cleanup" toml:"rate_cleanup" env:"SERVER_RATE_CLEANUP" env-default:"5m"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn" toml:"dsn" env:"DATABASE_DSN" env-required:"true"`
	MaxConns        int32         `yaml:"max_conns" toml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"25"`
	MinConns        int32         `yaml:"min_conns" toml:"min_conns" env:"DATABASE_MIN_CONNS" env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" toml:"max_conn_lifetime" env:"DATABASE_MAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" toml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and authorization-code settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" toml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer" toml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"lifelog"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" toml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	CodeTTL         time.Duration `yaml:"code_ttl" toml:"code_ttl" env:"AUTH_CODE_TTL" env-default:"2m"`
	ClientID        string        `yaml:"client_id" toml:"client_id" env:"AUTH_CLIENT_ID" env-default:"lifelog-frontend"`
	RedirectURIsRaw string        `yaml:"redirect_uris" toml:"redirect_uris" env:"AUTH_REDIRECT_URIS" env-default:"http://localhost:8080/oauth-redirect"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" toml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig holds the day-query cache settings. An empty Addrs disables caching.
type RedisConfig struct {
	Addrs    string        `yaml:"addrs" toml:"addrs" env:"REDIS_ADDRS"`
	Password string        `yaml:"password" toml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" toml:"db" env:"REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" toml:"pool_size" env:"REDIS_POOL_SIZE" env-default:"10"`
	TTL      time.Duration `yaml:"ttl" toml:"ttl" env:"REDIS_TTL" env-default:"10m"`
}

// KafkaConfig holds entry event publishing settings. An empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers  string `yaml:"brokers" toml:"brokers" env:"KAFKA_BROKERS"`
	Topic    string `yaml:"topic" toml:"topic" env:"KAFKA_TOPIC" env-default:"timeline.entries"`
	ClientID string `yaml:"client_id" toml:"client_id" env:"KAFKA_CLIENT_ID" env-default:"lifelog-timeline"`
}

// TimelineConfig holds day view settings.
type TimelineConfig struct {
	Gap              time.Duration `yaml:"gap" toml:"gap" env:"TIMELINE_GAP" env-default:"1h"`
	Timezone         string        `yaml:"timezone" toml:"timezone" env:"TIMELINE_TIMEZONE" env-default:"UTC"`
	MaxEntriesPerDay uint64        `yaml:"max_entries_per_day" toml:"max_entries_per_day" env:"TIMELINE_MAX_ENTRIES_PER_DAY" env-default:"5000"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" toml:"-" env:"-"`
}

// RedirectURIs returns the configured redirect URIs.
func (c AuthConfig) RedirectURIs() []string {
	return splitList(c.RedirectURIsRaw)
}

// IsRedirectAllowed reports whether uri is one of the configured redirect URIs.
func (c AuthConfig) IsRedirectAllowed(uri string) bool {
	return slices.Contains(c.RedirectURIs(), uri)
}

// BrokerList returns the configured Kafka brokers.
func (c KafkaConfig) BrokerList() []string {
	return splitList(c.Brokers)
}

// Enabled reports whether event publishing is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.BrokerList()) > 0
}

// AddrList returns the configured Redis addresses.
func (c RedisConfig) AddrList() []string {
	return splitList(c.Addrs)
}

// Enabled reports whether the cache is configured.
func (c RedisConfig) Enabled() bool {
	return len(c.AddrList()) > 0
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
