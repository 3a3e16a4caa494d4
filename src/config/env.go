package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

//Env holds the defaults taken from the environment, command line flags override them
type Env struct {
	Interval time.Duration `env:"LIFEBOX_INTERVAL" envDefault:"300ms"`
	MaxSteps int           `env:"LIFEBOX_MAX_STEPS" envDefault:"1000"`
	Engine   string        `env:"LIFEBOX_ENGINE" envDefault:"base"`
	Template string        `env:"LIFEBOX_TEMPLATE"`
	Seed     int64         `env:"LIFEBOX_SEED"`
	LogFile  string        `env:"LIFEBOX_LOG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

//LoadEnv returns the Env populated from the environment
func LoadEnv() (Env, error) {
	var e Env
	err := ParseEnv(&e)
	return e, err
}
