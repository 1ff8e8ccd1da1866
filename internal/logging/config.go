package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel      = "PROJLOADER_LOG_LEVEL"
	EnvLogFormat     = "PROJLOADER_LOG_FORMAT"
	EnvLogSink       = "PROJLOADER_LOG_SINK"
	EnvLogFile       = "PROJLOADER_LOG_FILE"
	EnvLogMaxSizeMB  = "PROJLOADER_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups = "PROJLOADER_LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays = "PROJLOADER_LOG_MAX_AGE_DAYS"
)

// Config controls the slog setup. Nil fields fall back to defaults.
type Config struct {
	Level  *string `toml:"level,omitempty"`
	Format *string `toml:"format,omitempty"`
	Sink   *string `toml:"sink,omitempty"`
	File   *string `toml:"file,omitempty"`

	MaxSizeMB  *int `toml:"max_size_mb,omitempty"`
	MaxBackups *int `toml:"max_backups,omitempty"`
	MaxAgeDays *int `toml:"max_age_days,omitempty"`
}

// DefaultConfig returns defaults: quiet text logging to stderr.
func DefaultConfig() Config {
	level := "warn"
	format := string(FormatText)
	sink := string(SinkStderr)
	maxSizeMB := 10
	maxBackups := 3
	maxAgeDays := 7
	return Config{
		Level:      &level,
		Format:     &format,
		Sink:       &sink,
		MaxSizeMB:  &maxSizeMB,
		MaxBackups: &maxBackups,
		MaxAgeDays: &maxAgeDays,
	}
}

// WithEnv applies PROJLOADER_LOG_* overrides on top of the config.
func (c Config) WithEnv() Config {
	applyString := func(dst **string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = &v
		}
	}
	applyInt := func(dst **int, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		*dst = &n
	}

	applyString(&c.Level, EnvLogLevel)
	applyString(&c.Format, EnvLogFormat)
	applyString(&c.Sink, EnvLogSink)
	applyString(&c.File, EnvLogFile)
	applyInt(&c.MaxSizeMB, EnvLogMaxSizeMB)
	applyInt(&c.MaxBackups, EnvLogMaxBackups)
	applyInt(&c.MaxAgeDays, EnvLogMaxAgeDays)
	return c
}

// Normalize lowercases and trims fields and validates the result.
func (c Config) Normalize() (Config, error) {
	normalizeString := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.ToLower(strings.TrimSpace(*s))
		if v == "" {
			return nil
		}
		return &v
	}
	c.Level = normalizeString(c.Level)
	c.Format = normalizeString(c.Format)
	c.Sink = normalizeString(c.Sink)
	if c.File != nil {
		v := strings.TrimSpace(*c.File)
		if v == "" {
			c.File = nil
		} else {
			c.File = &v
		}
	}
	clamp := func(v **int) {
		if *v != nil && **v < 0 {
			zero := 0
			*v = &zero
		}
	}
	clamp(&c.MaxSizeMB)
	clamp(&c.MaxBackups)
	clamp(&c.MaxAgeDays)
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Level != nil {
		switch *c.Level {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("logging.level: invalid %q", *c.Level)
		}
	}
	if c.Format != nil {
		switch Format(*c.Format) {
		case FormatText, FormatJSON:
		default:
			return fmt.Errorf("logging.format: invalid %q", *c.Format)
		}
	}
	if c.Sink != nil {
		switch Sink(*c.Sink) {
		case SinkStderr, SinkFile, SinkNone:
		default:
			return fmt.Errorf("logging.sink: invalid %q", *c.Sink)
		}
	}
	return nil
}
