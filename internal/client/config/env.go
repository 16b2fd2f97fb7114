package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with DIARY_* variables. Values come from envFile
// (if it exists) and from the process environment, which takes precedence.
// The file is read without exporting its values into the process.
//
// Panics on a malformed env file or duration, like parseJson.
func parseEnv(cfg *Config, envFile string) {
	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		fileVars = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	fields := map[string]*string{
		"DIARY_STORAGE":    &cfg.StorageBackend,
		"DIARY_DB":         &cfg.DatabasePath,
		"DIARY_DATA_DIR":   &cfg.DataDir,
		"DIARY_LOG_LEVEL":  &cfg.LogLevel,
		"DIARY_LOG_FORMAT": &cfg.LogFormat,
		"DIARY_LOG_FILE":   &cfg.LogFile,
	}
	for key, dst := range fields {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("DIARY_NOTIFY_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.NotificationTimeout = d
	}
}
