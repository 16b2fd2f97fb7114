package config

import (
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// Config holds runtime settings for the GophDiary CLI.
type Config struct {
	StorageBackend string
	DatabasePath   string
	DataDir        string

	LogLevel  string
	LogFormat string
	LogFile   string

	NotificationTimeout time.Duration

	// Users is the static credential roster.
	Users []models.Identity
}

// DefaultUsers is the roster used when no JSON config supplies one.
func DefaultUsers() []models.Identity {
	return []models.Identity{
		{Username: "Jonas", Password: "1111"},
		{Username: "umymasyed", Password: "2244"},
		{Username: "Sarah", Password: "3322"},
	}
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = "sqlite"
	c.DatabasePath = "diary.db"
	c.DataDir = "diary-data"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogFile = ""
	c.NotificationTimeout = 3 * time.Second
	c.Users = DefaultUsers()
}

// LoadConfig applies defaults, then .env/environment, JSON and flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
