// Package config reads runtime settings from BEMINE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration.
type Config struct {
	WindowWidth  int    `env:"BEMINE_WINDOW_WIDTH"  envDefault:"1024"`
	WindowHeight int    `env:"BEMINE_WINDOW_HEIGHT" envDefault:"768"`
	PhotoDir     string `env:"BEMINE_PHOTO_DIR"     envDefault:"photos"`
	Seed         uint64 `env:"BEMINE_SEED"` // 0 seeds from the clock

	Audio  Audio  `envPrefix:"BEMINE_AUDIO_"`
	Notify Notify `envPrefix:"BEMINE_NOTIFY_"`
}

// Audio controls the celebration chime.
type Audio struct {
	Enabled bool    `env:"ENABLED" envDefault:"true"`
	Volume  float64 `env:"VOLUME"  envDefault:"0.5"`
}

// Notify controls the acceptance notification.
type Notify struct {
	Backend  string        `env:"BACKEND"   envDefault:"log"`
	Timeout  time.Duration `env:"TIMEOUT"   envDefault:"10s"`
	ToName   string        `env:"TO_NAME"   envDefault:"My Love"`
	FromName string        `env:"FROM_NAME" envDefault:"Valentine App"`
	Message  string        `env:"MESSAGE"   envDefault:"She said YES! 💖"`

	EmailJSEndpoint   string `env:"EMAILJS_ENDPOINT"    envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges the env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume))
	}
	switch c.Notify.Backend {
	case "log", "emailjs", "desktop":
	default:
		errs = append(errs, fmt.Errorf("unknown notify backend %q", c.Notify.Backend))
	}
	if c.Notify.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("notify timeout %v must be positive", c.Notify.Timeout))
	}
	return errors.Join(errs...)
}
