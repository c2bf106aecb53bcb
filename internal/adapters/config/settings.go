package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Log formats accepted in NGPACK_LOG_FORMAT.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Settings are process-wide options read from the environment.
type Settings struct {
	LogFormat string        `env:"NGPACK_LOG_FORMAT" envDefault:"pretty"`
	StateDir  string        `env:"NGPACK_STATE_DIR" envDefault:".ngpack"`
	Debounce  time.Duration `env:"NGPACK_DEBOUNCE" envDefault:"200ms"`
	Manifest  string        `env:"NGPACK_MANIFEST" envDefault:"ngpack.yaml"`
}

// JSONLogs reports whether logs should be emitted as JSON.
func (s Settings) JSONLogs() bool {
	return s.LogFormat == LogFormatJSON
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

// ParseSettings parses Settings from the given variables only.
func ParseSettings(environ map[string]string) (Settings, error) {
	return parseSettings(env.Options{Environment: environ})
}

func parseSettings(opts env.Options) (Settings, error) {
	s, err := env.ParseAsWithOptions[Settings](opts)
	if err != nil {
		return Settings{}, zerr.Wrap(err, domain.ErrSettingsParse.Error())
	}
	switch s.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return Settings{}, zerr.With(domain.ErrSettingsParse, "NGPACK_LOG_FORMAT", s.LogFormat)
	}
	return s, nil
}
