package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Timeline.validate(); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}

	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be > 0 (got %d)", c.Server.RateLimit)
	}
	if c.Server.OAuthRateLimit < 0 {
		return fmt.Errorf("server.oauth_rate_limit must be >= 0 (got %d)", c.Server.OAuthRateLimit)
	}

	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return errors.New("kafka.topic is required when brokers are configured")
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.ClientID == "" {
		return errors.New("client_id is required")
	}
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %v)", a.AccessTokenTTL)
	}
	if a.CodeTTL <= 0 {
		return fmt.Errorf("code_ttl must be > 0 (got %v)", a.CodeTTL)
	}

	uris := a.RedirectURIs()
	if len(uris) == 0 {
		return errors.New("at least one redirect uri must be configured")
	}
	for _, raw := range uris {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid redirect uri %q", raw)
		}
	}

	return nil
}

func (t *TimelineConfig) validate() error {
	if t.Gap <= 0 {
		return fmt.Errorf("gap must be > 0 (got %v)", t.Gap)
	}
	if t.MaxEntriesPerDay == 0 {
		return errors.New("max_entries_per_day must be > 0")
	}

	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", t.Timezone, err)
	}
	t.Location = loc

	return nil
}
