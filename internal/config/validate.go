package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters when auth is enabled (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Server.UploadPerMinute < 0 {
		return fmt.Errorf("server.upload_per_minute must be >= 0 (got %d)", c.Server.UploadPerMinute)
	}

	if err := c.Woerter.validate(); err != nil {
		return fmt.Errorf("woerter: %w", err)
	}

	if c.Generator.ChunkMaxLength <= 0 {
		return fmt.Errorf("generator.chunk_max_length must be > 0 (got %d)", c.Generator.ChunkMaxLength)
	}
	if c.Generator.MinDialogLines <= 0 {
		return fmt.Errorf("generator.min_dialog_lines must be > 0 (got %d)", c.Generator.MinDialogLines)
	}

	if c.Speech.Concurrency <= 0 {
		return fmt.Errorf("speech.concurrency must be > 0 (got %d)", c.Speech.Concurrency)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	return nil
}

func (w *WoerterConfig) validate() error {
	u, err := url.Parse(w.BaseURL)
	if err != nil || u.Host == "" || !strings.HasPrefix(u.Scheme, "http") {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", w.BaseURL)
	}
	if w.MinDelay < 0 {
		return fmt.Errorf("min_delay must be >= 0 (got %s)", w.MinDelay)
	}
	if w.MaxDelay < w.MinDelay {
		return fmt.Errorf("max_delay (%s) must be >= min_delay (%s)", w.MaxDelay, w.MinDelay)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", w.Timeout)
	}
	return nil
}

// RequireDatabase reports an error when no database DSN is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required (set DATABASE_DSN)")
	}
	return nil
}
