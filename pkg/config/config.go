// Package config loads the settings for the bigmin command from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultLogLevel = "info"
	defaultLocale   = "en"
)

// Config holds the settings used by the bigmin command.
type Config struct {
	LogLevel log.Level
	Locale   string
	Input    string
}

// Load reads the optional .env files and returns the configuration found in
// the environment. Settings that are not present get their default value.
func Load(filenames ...string) *Config {
	log.Trace("--> config.Load")
	defer log.Trace("<-- config.Load")

	if err := godotenv.Load(filenames...); err != nil {
		log.Debug("No .env file loaded: ", err)
	}

	cfg := &Config{
		LogLevel: ParseLevel(getEnv("BIGMIN_LOG_LEVEL", defaultLogLevel)),
		Locale:   getEnv("BIGMIN_LOCALE", defaultLocale),
		Input:    os.Getenv("BIGMIN_INPUT"),
	}
	return cfg
}

// ParseLevel returns the log level for the name, or info if the name isn't a
// known level.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		log.Warningf("Invalid log level %q, using %s", name, defaultLogLevel)
		return log.InfoLevel
	}
	return level
}

// getEnv returns the value of the environment variable, or def if it is unset or empty.
func getEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
