package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/sirupsen/logrus"
)

func TestLoadEnvDefaults(t *testing.T) {
	env, err := LoadEnv(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if env.LogLevel != "info" || env.LogFormat != "text" {
		t.Errorf("log settings = %q/%q", env.LogLevel, env.LogFormat)
	}
	if env.CacheDir != "airfoils" || env.XFoilPath != "xfoil" {
		t.Errorf("paths = %q, %q", env.CacheDir, env.XFoilPath)
	}
	if env.UIUCURL != "https://m-selig.ae.illinois.edu/ads/coord/" {
		t.Errorf("UIUCURL = %q", env.UIUCURL)
	}
	if env.XFoilTimeout != time.Minute || env.Workers != 0 {
		t.Errorf("timeout = %v, workers = %d", env.XFoilTimeout, env.Workers)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env, err := LoadEnv(context.Background(), envconfig.MapLookuper(map[string]string{
		"GOWING_LOG_LEVEL":     "debug",
		"GOWING_LOG_FORMAT":    "json",
		"GOWING_CACHE_DIR":     "/tmp/coords",
		"GOWING_XFOIL_TIMEOUT": "5s",
		"GOWING_WORKERS":       "3",
	}))
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if env.LogLevel != "debug" || env.LogFormat != "json" || env.CacheDir != "/tmp/coords" {
		t.Errorf("env = %+v", env)
	}
	if env.XFoilTimeout != 5*time.Second || env.Workers != 3 {
		t.Errorf("timeout = %v, workers = %d", env.XFoilTimeout, env.Workers)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"bad duration":     {"GOWING_XFOIL_TIMEOUT": "soon"},
		"negative workers": {"GOWING_WORKERS": "-1"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadEnv(context.Background(), envconfig.MapLookuper(vars)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	env := &Env{LogLevel: "warn", LogFormat: "json"}
	log, err := env.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v", log.GetLevel())
	}
	log.Info("hidden")
	log.WithField("airfoil", "s1223").Warn("shown")
	if out := buf.String(); !bytes.Contains(buf.Bytes(), []byte(`"airfoil":"s1223"`)) || bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Errorf("output = %s", out)
	}

	if _, err := (&Env{LogLevel: "loud"}).NewLogger(&buf); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := (&Env{LogLevel: "info", LogFormat: "xml"}).NewLogger(&buf); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("GOWING_TEST_DOTENV=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GOWING_TEST_DOTENV", "")
	os.Unsetenv("GOWING_TEST_DOTENV")

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("GOWING_TEST_DOTENV"); got != "from-file" {
		t.Errorf("GOWING_TEST_DOTENV = %q", got)
	}
}
