package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
)

func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_FILE", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlayWin(t *testing.T) {
	out, err := runRoot(t, "2 1 free\n", "--height", "1", "--width", "3", "--mines", "0")
	require.NoError(t, err)
	assert.Contains(t, out, console.MessageWon)
}

func TestPlayAskMineCount(t *testing.T) {
	out, err := runRoot(t, "5\n0\n1 1 free\n", "--height", "2", "--width", "2", "--mines", "4", "--ask")
	require.NoError(t, err)
	assert.Contains(t, out, console.PromptMineCount)
	assert.Contains(t, out, console.MessageWon)
}

func TestPlayAskIgnoresConfiguredMineCount(t *testing.T) {
	t.Setenv("MINES_HEIGHT", "2")
	t.Setenv("MINES_WIDTH", "2")

	out, err := runRoot(t, "0\n1 1 free\n", "--ask")
	require.NoError(t, err)
	assert.Contains(t, out, console.PromptMineCount)
	assert.Contains(t, out, console.MessageWon)
}

func TestPlayFlagsOverrideInvalidEnv(t *testing.T) {
	t.Setenv("MINES_HEIGHT", "2")
	t.Setenv("MINES_WIDTH", "2")

	out, err := runRoot(t, "1 1 free\n", "--mines", "0")
	require.NoError(t, err)
	assert.Contains(t, out, console.MessageWon)
}

func TestPlayRejectsOversizedBoard(t *testing.T) {
	_, err := runRoot(t, "", "--height", "4611686018427387905", "--width", "4", "--mines", "0")
	var ce *mines.ConfigError
	assert.True(t, errors.As(err, &ce))
}

func TestPlayInputClosed(t *testing.T) {
	_, err := runRoot(t, "", "--height", "3", "--width", "3", "--mines", "1")
	assert.ErrorIs(t, err, console.ErrInputClosed)
}

func TestPlayBadBoard(t *testing.T) {
	_, err := runRoot(t, "", "--height", "3", "--width", "3", "--mines", "9")
	var ce *mines.ConfigError
	assert.True(t, errors.As(err, &ce))
}

func TestRecordsRejectsBadFlags(t *testing.T) {
	_, err := runRoot(t, "", "records", "--outcome", "draw")
	assert.Error(t, err)

	_, err = runRoot(t, "", "records", "--board", "3:3")
	assert.Error(t, err)
}
