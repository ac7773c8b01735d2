// Package config loads runtime settings from the environment and sweep
// definitions from ini files.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/sirupsen/logrus"
)

// Env holds settings read from GOWING_* environment variables
type Env struct {
	// Logging
	LogLevel  string `env:"GOWING_LOG_LEVEL,default=info"`
	LogFormat string `env:"GOWING_LOG_FORMAT,default=text"` // text or json

	// Coordinate files
	CacheDir string `env:"GOWING_CACHE_DIR,default=airfoils"`
	UIUCURL  string `env:"GOWING_UIUC_URL,default=https://m-selig.ae.illinois.edu/ads/coord/"`

	// Section solver
	XFoilPath    string        `env:"GOWING_XFOIL_PATH,default=xfoil"`
	XFoilTimeout time.Duration `env:"GOWING_XFOIL_TIMEOUT,default=60s"`

	// Sweep worker count, 0 means one per CPU
	Workers int `env:"GOWING_WORKERS,default=0"`
}

// LoadDotEnv loads the given .env files (".env" when none) into the process
// environment. Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadEnv reads Env through lookuper, or the process environment when nil.
func LoadEnv(ctx context.Context, lookuper envconfig.Lookuper) (*Env, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	var env Env
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &env,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if env.Workers < 0 {
		return nil, fmt.Errorf("GOWING_WORKERS must not be negative, got %d", env.Workers)
	}
	return &env, nil
}

// NewLogger builds the application logger writing to out.
func (e *Env) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(e.LogLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	switch strings.ToLower(e.LogFormat) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (text, json)", e.LogFormat)
	}
	return log, nil
}
