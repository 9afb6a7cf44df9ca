package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Gemini.validate(); err != nil {
		return fmt.Errorf("gemini: %w", err)
	}

	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	if c.Scheduler.RateLimit <= 0 || c.Scheduler.RateBurst <= 0 {
		return fmt.Errorf("scheduler: rate_limit and rate_burst must be > 0")
	}

	return c.Log.validate()
}

// Validate checks the subset loaded by LoadMaintenance.
func (c *MaintenanceConfig) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Retention.DeletedDays < 1 {
		return fmt.Errorf("quiz: deleted_retention_days must be >= 1 (got %d)", c.Retention.DeletedDays)
	}
	return c.Log.validate()
}

func (l *LogConfig) validate() error {
	switch l.Format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", l.Format)
	}
}

func (g *GeminiConfig) validate() error {
	if strings.TrimSpace(g.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", g.Temperature)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", g.Timeout)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	policy := domain.QuizPolicy(strings.ToLower(strings.TrimSpace(q.PolicyRaw)))
	if !policy.IsValid() {
		return fmt.Errorf("policy must be %q or %q (got %q)", domain.QuizPolicyLeastRecent, domain.QuizPolicyRandom, q.PolicyRaw)
	}
	q.Policy = policy

	if q.CorrectPoints < 0 || q.WrongPenalty < 0 || q.HintPenalty < 0 {
		return fmt.Errorf("points and penalties must be >= 0")
	}
	if q.ListLimit <= 0 {
		return fmt.Errorf("list_limit must be > 0 (got %d)", q.ListLimit)
	}
	if q.MaxWordLength <= 0 {
		return fmt.Errorf("max_word_length must be > 0 (got %d)", q.MaxWordLength)
	}
	if q.DeletedRetentionDays < 1 {
		return fmt.Errorf("deleted_retention_days must be >= 1 (got %d)", q.DeletedRetentionDays)
	}
	return nil
}
