package config

import (
	"net"
	"strconv"
	"time"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	LINE      LINEConfig      `yaml:"line"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL (Supabase) connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LINEConfig holds Messaging API credentials.
type LINEConfig struct {
	ChannelSecret      string `yaml:"channel_secret"       env:"LINE_CHANNEL_SECRET"       env-required:"true"`
	ChannelAccessToken string `yaml:"channel_access_token" env:"LINE_CHANNEL_ACCESS_TOKEN" env-required:"true"`
	// EndpointBase overrides the API host; empty means the SDK default.
	EndpointBase string `yaml:"endpoint_base" env:"LINE_ENDPOINT_BASE"`
}

// GeminiConfig holds language model settings.
type GeminiConfig struct {
	APIKey         string        `yaml:"api_key"         env:"GEMINI_API_KEY"         env-required:"true"`
	Model          string        `yaml:"model"           env:"GEMINI_MODEL"           env-default:"gemini-flash-latest"`
	Temperature    float32       `yaml:"temperature"     env:"GEMINI_TEMPERATURE"     env-default:"0.2"`
	Timeout        time.Duration `yaml:"timeout"         env:"GEMINI_TIMEOUT"         env-default:"20s"`
	NativeLanguage string        `yaml:"native_language" env:"GEMINI_NATIVE_LANGUAGE" env-default:"Thai"`
}

// QuizConfig holds quiz and scoring rules.
type QuizConfig struct {
	PolicyRaw     string `yaml:"policy"          env:"QUIZ_POLICY"          env-default:"least_recent"`
	CorrectPoints int    `yaml:"correct_points"  env:"QUIZ_CORRECT_POINTS"  env-default:"10"`
	WrongPenalty  int    `yaml:"wrong_penalty"   env:"QUIZ_WRONG_PENALTY"   env-default:"2"`
	HintPenalty   int    `yaml:"hint_penalty"    env:"QUIZ_HINT_PENALTY"    env-default:"2"`
	ListLimit     int    `yaml:"list_limit"      env:"QUIZ_LIST_LIMIT"      env-default:"20"`
	MaxWordLength int    `yaml:"max_word_length" env:"QUIZ_MAX_WORD_LENGTH" env-default:"100"`

	// DeletedRetentionDays is how long cmd/cleanup keeps deleted words.
	DeletedRetentionDays int `yaml:"deleted_retention_days" env:"QUIZ_DELETED_RETENTION_DAYS" env-default:"30"`

	// Policy is parsed from PolicyRaw during validation.
	Policy domain.QuizPolicy `yaml:"-" env:"-"`
}

// SchedulerConfig protects the quiz trigger called by the external cron.
type SchedulerConfig struct {
	// TriggerToken, when set, must be sent as "Authorization: Bearer <token>".
	TriggerToken string  `yaml:"trigger_token" env:"SCHEDULER_TRIGGER_TOKEN"`
	RateLimit    float64 `yaml:"rate_limit"    env:"SCHEDULER_RATE_LIMIT"    env-default:"1"`
	RateBurst    int     `yaml:"rate_burst"    env:"SCHEDULER_RATE_BURST"    env-default:"3"`
}

// MaintenanceConfig is the subset of Config used by cmd/migrate and
// cmd/cleanup. It reads the same YAML keys and variables.
type MaintenanceConfig struct {
	Database  DatabaseConfig  `yaml:"database"`
	Retention RetentionConfig `yaml:"quiz"`
	Log       LogConfig       `yaml:"log"`
}

// RetentionConfig mirrors QuizConfig.DeletedRetentionDays.
type RetentionConfig struct {
	DeletedDays int `yaml:"deleted_retention_days" env:"QUIZ_DELETED_RETENTION_DAYS" env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
