package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/benoitkugler/svgmouse/svgicon"
)

// Prefix of the environment variables, such as SVGMOUSE_FILE.
const Prefix = "svgmouse"

type Config struct {
	File          string            `envconfig:"FILE" default:"image.svg"`
	Delay         time.Duration     `envconfig:"DELAY" default:"20ms"`
	Countdown     int               `envconfig:"COUNTDOWN" default:"5"`
	ErrorMode     svgicon.ErrorMode `envconfig:"ERROR_MODE" default:"warn"`
	LogLevel      slog.Level        `envconfig:"LOG_LEVEL" default:"info"`
	DryRun        bool              `envconfig:"DRY_RUN" default:"false"`
	Preview       string            `envconfig:"PREVIEW" default:"preview.png"`
	PreviewWidth  int               `envconfig:"PREVIEW_WIDTH" default:"800"`
	PreviewHeight int               `envconfig:"PREVIEW_HEIGHT" default:"600"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Delay < 0 {
		return fmt.Errorf("config: negative delay %s", cfg.Delay)
	}
	if cfg.Countdown < 0 {
		return fmt.Errorf("config: negative countdown %d", cfg.Countdown)
	}
	if cfg.PreviewWidth <= 0 || cfg.PreviewHeight <= 0 {
		return fmt.Errorf("config: invalid preview size %dx%d", cfg.PreviewWidth, cfg.PreviewHeight)
	}
	return nil
}
