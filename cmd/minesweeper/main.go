package main

import (
	"errors"
	"os"

	"github.com/vancomm/minesweeper/internal/console"
)

func main() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errGameLost):
		os.Exit(3)
	case errors.Is(err, console.ErrInputClosed):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
