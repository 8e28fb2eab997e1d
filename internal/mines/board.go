package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Position struct {
	Y, X int
}

type Board struct {
	Params
	grid        [][]Cell
	rnd         *rand.Rand
	turnCount   int
	minesPlaced bool
	lost        bool
	exploded    *Position
}

func newGrid(height, width int) [][]Cell {
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}
	return grid
}

// New builds an empty board. Mines are planted from rnd on the first
// reveal, so the first revealed cell is always safe.
func New(params Params, rnd *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Board{
		Params: params,
		grid:   newGrid(params.Height, params.Width),
		rnd:    rnd,
	}
	return b, nil
}

// NewWithMines builds a board whose mines are already planted at the
// given 0-based positions, bypassing random placement.
func NewWithMines(params Params, mines []Position) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != params.MineCount {
		return nil, &ConfigError{
			Params: params,
			Reason: fmt.Sprintf("%d mine positions given", len(mines)),
		}
	}
	b := &Board{
		Params: params,
		grid:   newGrid(params.Height, params.Width),
	}
	for _, p := range mines {
		if !params.InBounds(p.Y, p.X) {
			return nil, &ConfigError{
				Params: params,
				Reason: fmt.Sprintf("mine at %d:%d is out of bounds", p.Y, p.X),
			}
		}
		if b.grid[p.Y][p.X].hasMine {
			return nil, &ConfigError{
				Params: params,
				Reason: fmt.Sprintf("duplicate mine at %d:%d", p.Y, p.X),
			}
		}
		b.grid[p.Y][p.X].plantMine()
	}
	b.minesPlaced = true
	b.countAdjacent()
	return b, nil
}

// neighbours yields the in-bounds positions around y:x, excluding y:x.
func (b *Board) neighbours(y, x int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dy == 0 && dx == 0 {
					continue
				}
				if !b.InBounds(y+dy, x+dx) {
					continue
				}
				if !yield(Position{y + dy, x + dx}) {
					return
				}
			}
		}
	}
}

func (b *Board) countAdjacent() {
	for y := range b.Height {
		for x := range b.Width {
			n := 0
			for p := range b.neighbours(y, x) {
				if b.grid[p.Y][p.X].hasMine {
					n++
				}
			}
			b.grid[y][x].setAdjacentCount(n)
		}
	}
}

// Cell returns a copy of the cell at the 0-based position y:x.
func (b *Board) Cell(y, x int) (Cell, bool) {
	if !b.InBounds(y, x) {
		return Cell{}, false
	}
	return b.grid[y][x], true
}

func (b *Board) TurnCount() int {
	return b.turnCount
}

func (b *Board) MinesPlaced() bool {
	return b.minesPlaced
}

// Exploded is the position of the mine that ended the game, if any.
func (b *Board) Exploded() (Position, bool) {
	if b.exploded == nil {
		return Position{}, false
	}
	return *b.exploded, true
}

func (b *Board) FlagsRemaining() int {
	flags := 0
	for y := range b.Height {
		for x := range b.Width {
			if b.grid[y][x].flagged {
				flags++
			}
		}
	}
	return b.MineCount - flags
}

func (b *Board) toggleFlag(y, x int) bool {
	c := &b.grid[y][x]
	if c.explored {
		return false
	}
	c.toggleFlag()
	return true
}

// ApplyAction performs one player turn. row and col are 1-based.
// Nothing is mutated when the result is Invalid.
func (b *Board) ApplyAction(row, col int, kind ActionKind) ActionResult {
	if b.Finished() {
		return Invalid
	}
	if row < 1 || row > b.Height || col < 1 || col > b.Width {
		return Invalid
	}
	y, x := row-1, col-1
	c := &b.grid[y][x]
	if c.explored {
		return Invalid
	}

	var result ActionResult
	switch kind {
	case Reveal:
		if c.flagged {
			return Invalid
		}
		result = b.reveal(y, x)
	case Flag:
		if !b.toggleFlag(y, x) {
			return Invalid
		}
		result = Cleared
	default:
		return Invalid
	}
	b.turnCount++

	fields := logrus.Fields{
		"board":  b.Params.String(),
		"turn":   b.turnCount,
		"action": kind.String(),
		"row":    row,
		"col":    col,
	}
	if result == MineHit {
		Log.WithFields(fields).Debug("mine exploded")
	} else if b.IsWon() {
		Log.WithFields(fields).Debug("board cleared")
	}

	return result
}

func (b *Board) IsLost() bool {
	return b.lost
}

// IsWon holds once at least one turn was played, no mine exploded, and
// either every safe cell is explored or the flags sit exactly on the
// mines. A board without mines can only be won by exploring.
func (b *Board) IsWon() bool {
	if !b.minesPlaced || b.lost || b.turnCount == 0 {
		return false
	}
	allExplored, exactFlags := true, b.MineCount > 0
	for y := range b.Height {
		for x := range b.Width {
			c := b.grid[y][x]
			if c.hasMine {
				if !c.flagged {
					exactFlags = false
				}
				continue
			}
			if !c.explored {
				allExplored = false
			}
			if c.flagged {
				exactFlags = false
			}
		}
	}
	return allExplored || exactFlags
}

func (b *Board) Finished() bool {
	return b.lost || b.IsWon()
}

func (b *Board) State() State {
	switch {
	case b.lost:
		return Lost
	case b.IsWon():
		return Won
	case b.turnCount == 0:
		return NotStarted
	default:
		return InProgress
	}
}
