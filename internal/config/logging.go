package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type Logging struct {
	Level      logrus.Level
	Colors     bool
	File       string // empty disables the rotating file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func NewLogging() (*Logging, error) {
	cfg := &Logging{
		Level:      logrus.InfoLevel,
		Colors:     Development(),
		File:       os.Getenv("LOG_FILE"),
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
	if cfg.Colors {
		cfg.Level = logrus.DebugLevel
	}

	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level, err := logrus.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.Level = level
	}

	for key, dst := range map[string]*int{
		"LOG_MAX_SIZE_MB":  &cfg.MaxSizeMB,
		"LOG_MAX_BACKUPS":  &cfg.MaxBackups,
		"LOG_MAX_AGE_DAYS": &cfg.MaxAgeDays,
	} {
		if err := lookupInt(key, dst); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c Logging) Fields() logrus.Fields {
	return logrus.Fields{
		"level":        c.Level.String(),
		"file":         c.File,
		"max_size_mb":  c.MaxSizeMB,
		"max_backups":  c.MaxBackups,
		"max_age_days": c.MaxAgeDays,
	}
}
