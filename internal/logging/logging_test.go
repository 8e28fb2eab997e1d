package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
)

func TestNewWritesText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&config.Logging{Level: logrus.InfoLevel}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.WithField("board", "9x9(10)").Info("game over")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "game over")
	assert.Contains(t, buf.String(), "board=")
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")
	var buf bytes.Buffer
	log, err := New(&config.Logging{
		Level:      logrus.DebugLevel,
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}, &buf)
	require.NoError(t, err)

	log.WithField("turn", 3).Debug("mine exploded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "mine exploded", entry["msg"])
	assert.EqualValues(t, 3, entry["turn"])
}
