package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the scene file.
const (
	EnvConfigPath  = "SCENE_CONFIG"
	EnvLogLevel    = "SCENE_LOG_LEVEL"
	EnvModelSource = "SCENE_MODEL_SOURCE"
	EnvShowFPS     = "SCENE_SHOW_FPS"
)

// LoadDotEnv sets environment variables from the dotenv file at path. Variables already
// set in the process environment win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields of cfg from SCENE_* variables. An unparsable boolean is an error.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvModelSource); v != "" {
		cfg.Model.Source = v
	}
	if v := os.Getenv(EnvShowFPS); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvShowFPS, err)
		}
		cfg.Debug.ShowFPS = b
	}
	return nil
}
