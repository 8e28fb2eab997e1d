package mines

import (
	"fmt"
	"strings"
)

// MaxSide bounds both board dimensions.
const MaxSide = 100

type Params struct {
	Height, Width, MineCount int
}

func (p Params) Unpack() (h int, w int, mc int) {
	return p.Height, p.Width, p.MineCount
}

func (p Params) Cells() int {
	return p.Height * p.Width
}

// Validate reports a *ConfigError when the board cannot be built: both
// dimensions must be positive and at least one cell must stay mine-free
// for the first reveal. Neither side may exceed MaxSide.
func (p Params) Validate() error {
	switch {
	case p.Height <= 0:
		return &ConfigError{Params: p, Reason: "height must be positive"}
	case p.Width <= 0:
		return &ConfigError{Params: p, Reason: "width must be positive"}
	case p.Height > MaxSide:
		return &ConfigError{Params: p, Reason: fmt.Sprintf("height must be at most %d", MaxSide)}
	case p.Width > MaxSide:
		return &ConfigError{Params: p, Reason: fmt.Sprintf("width must be at most %d", MaxSide)}
	case p.MineCount < 0:
		return &ConfigError{Params: p, Reason: "mine count must not be negative"}
	case p.MineCount >= p.Cells():
		return &ConfigError{
			Params: p,
			Reason: fmt.Sprintf("mine count must be below %d", p.Cells()),
		}
	}
	return nil
}

func (p Params) InBounds(y, x int) bool {
	return 0 <= y && y < p.Height && 0 <= x && x < p.Width
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Height, p.Width, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Height, &p.Width, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid board params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, p.Validate()
}

// [Params] implements [fmt.Stringer]
func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}
