package mines

const (
	SymbolMine    = 'X'
	SymbolFlag    = '*'
	SymbolCleared = '/'
	SymbolEmpty   = '.'
)

// Cell carries both the truth about a square (mine, adjacent count) and
// what the player knows about it (explored, flagged).
type Cell struct {
	hasMine       bool
	explored      bool
	flagged       bool
	adjacentMines int
}

func (c Cell) HasMine() bool      { return c.hasMine }
func (c Cell) Explored() bool     { return c.explored }
func (c Cell) Flagged() bool      { return c.flagged }
func (c Cell) AdjacentMines() int { return c.adjacentMines }

func (c *Cell) markExplored() {
	c.explored = true
}

func (c *Cell) toggleFlag() {
	c.flagged = !c.flagged
}

func (c *Cell) plantMine() {
	c.hasMine = true
}

func (c *Cell) setAdjacentCount(n int) {
	c.adjacentMines = n
}

func (c Cell) Render(revealMines bool) rune {
	switch {
	case revealMines && c.hasMine:
		return SymbolMine
	case c.flagged:
		return SymbolFlag
	case c.explored && !c.hasMine && c.adjacentMines > 0:
		return rune('0' + c.adjacentMines)
	case c.explored && !c.hasMine:
		return SymbolCleared
	default:
		return SymbolEmpty
	}
}
