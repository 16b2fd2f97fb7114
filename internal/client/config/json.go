package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/flagx"
	"github.com/dmitrijs2005/gophdiary/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	StorageBackend      string            `json:"storage_backend"`
	DatabasePath        string            `json:"database_path"`
	DataDir             string            `json:"data_dir"`
	LogLevel            string            `json:"log_level"`
	LogFormat           string            `json:"log_format"`
	LogFile             string            `json:"log_file"`
	NotificationTimeout *timex.Duration   `json:"notification_timeout"`
	Users               []models.Identity `json:"users"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Fields
// missing from the file keep their current values. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.StringFlag(os.Args[1:], "c", "config")
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.StorageBackend, jc.StorageBackend)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.DataDir, jc.DataDir)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.LogFile, jc.LogFile)

	if jc.NotificationTimeout != nil {
		cfg.NotificationTimeout = jc.NotificationTimeout.Duration
	}
	if len(jc.Users) > 0 {
		cfg.Users = jc.Users
	}
}
