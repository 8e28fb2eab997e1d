package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
)

// New builds a logger writing text to out. When cfg.File is set every
// entry is also written as JSON to a size-rotated file. Pass io.Discard
// as out to log to the file only.
func New(cfg *config.Logging, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(cfg.Level)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   cfg.Colors,
		FullTimestamp: true,
	})

	if cfg.File == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Level:      cfg.Level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.File, err)
	}
	log.AddHook(hook)

	return log, nil
}

// Stderr is New writing to os.Stderr.
func Stderr(cfg *config.Logging) (*logrus.Logger, error) {
	return New(cfg, os.Stderr)
}
