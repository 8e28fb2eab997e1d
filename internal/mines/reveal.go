package mines

func (b *Board) reveal(y, x int) ActionResult {
	if !b.minesPlaced {
		b.placeMines(y, x)
	}

	c := &b.grid[y][x]
	c.markExplored()
	if c.hasMine {
		b.lost = true
		b.exploded = &Position{y, x}
		return MineHit
	}

	if c.adjacentMines == 0 {
		b.propagate(y, x)
	}
	return Cleared
}

// propagate explores outward from a zero-count cell. A cell is marked
// explored before it is pushed, so each cell enters the stack at most
// once. Flagged cells are left alone.
func (b *Board) propagate(y, x int) {
	stack := []Position{{y, x}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for n := range b.neighbours(p.Y, p.X) {
			c := &b.grid[n.Y][n.X]
			if c.explored || c.hasMine || c.flagged {
				continue
			}
			c.markExplored()
			if c.adjacentMines == 0 {
				stack = append(stack, n)
			}
		}
	}
}
