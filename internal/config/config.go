package config

import (
	"context"
	"flag"
	"log/slog"

	"github.com/caarlos0/env/v6"

	"github.com/star-hub/starid/internal/model"
)

type Config struct {
	RunAddr          string `env:"RUN_ADDRESS"       envDefault:":3000"`
	DatabaseURI      string `env:"DATABASE_URI"      envDefault:"postgres://localhost:5432/starid?sslmode=disable"`
	SecretKey        string `env:"SECRET_KEY"        envDefault:"starid-secret-key-2024"`
	LogLevel         string `env:"LOG_LEVEL"         envDefault:"info"`
	StrictValidation bool   `env:"STRICT_VALIDATION" envDefault:"false"`
}

type Builder struct {
	cfg *Config
	log *slog.Logger
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{
			RunAddr:          "",
			DatabaseURI:      "",
			SecretKey:        "",
			LogLevel:         "",
			StrictValidation: false,
		},
		log: log,
	}
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromFlags() *Builder {
	flag.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	flag.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI")
	flag.StringVar(&b.cfg.SecretKey, "k", b.cfg.SecretKey, "Token signing key")
	flag.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	flag.BoolVar(&b.cfg.StrictValidation, "s", b.cfg.StrictValidation, "Strict request validation")

	flag.Parse()
	return b
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}
