// Package config loads runtime configuration for the GophDiary CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file and the process environment (see parseEnv); real
//     environment variables win over the file.
//  3. Optional JSON file (see parseJson) selected via -c or -config.
//  4. Command-line flags (see parseFlags).
//
// Supported flags
//
//	-s string   storage backend: sqlite or file
//	-d string   SQLite database path
//	-f string   data directory of the file backend
//	-l string   log level: debug, info, warn, error
//	-t int      notification timeout (seconds)
//
// Environment
//
//	DIARY_STORAGE, DIARY_DB, DIARY_DATA_DIR, DIARY_LOG_LEVEL,
//	DIARY_LOG_FORMAT, DIARY_LOG_FILE, DIARY_NOTIFY_TIMEOUT ("3s")
//
// # JSON schema
//
//	{
//	  "storage_backend": "sqlite",
//	  "database_path": "diary.db",
//	  "notification_timeout": "3s",
//	  "users": [{"username": "Jonas", "password": "1111"}]
//	}
//
// The credential roster can only be replaced through JSON.
package config
