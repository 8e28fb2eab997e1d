// Package console drives a board from a line-oriented text stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	PromptMineCount = "How many mines do you want on the field?"
	PromptMove      = "Set/unset mine marks or claim a cell as free (x and y coordinates with either mine or free):"
	MessageInvalid  = "There is a number here!"
	MessageLost     = "You stepped on a mine and failed!"
	MessageWon      = "Congratulations! You found all the mines!"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log logrus.FieldLogger
}

func New(in io.Reader, out io.Writer, log logrus.FieldLogger) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// AskMineCount prompts until it reads a count a board with the given
// number of cells accepts.
func (c *Console) AskMineCount(cells int) (int, error) {
	for {
		fmt.Fprintln(c.out, PromptMineCount)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= cells {
			fmt.Fprintf(c.out, "Enter a number from 0 to %d.\n", cells-1)
			continue
		}
		return n, nil
	}
}

type Move struct {
	Row, Col int
	Kind     mines.ActionKind
}

// ParseMove reads "x y free" or "x y mine", x being the column.
func ParseMove(line string) (Move, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Move{}, fmt.Errorf("expected 3 arguments, got %d", len(parts))
	}
	col, err := strconv.Atoi(parts[0])
	if err != nil {
		return Move{}, fmt.Errorf("first argument must be an int")
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return Move{}, fmt.Errorf("second argument must be an int")
	}
	kind, err := mines.ParseActionKind(parts[2])
	if err != nil {
		return Move{}, err
	}
	return Move{Row: row, Col: col, Kind: kind}, nil
}

// Play runs turns until the board is won or lost, or input runs out.
func (c *Console) Play(board *mines.Board) (mines.State, error) {
	for !board.Finished() {
		fmt.Fprintln(c.out)
		if err := Frame(c.out, board.RenderRows(false)); err != nil {
			return board.State(), err
		}
		fmt.Fprintln(c.out, PromptMove)

		line, err := c.readLine()
		if err != nil {
			return board.State(), err
		}

		move, err := ParseMove(line)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid command: %s\n", err)
			continue
		}
		if move.Row < 1 || move.Row > board.Height || move.Col < 1 || move.Col > board.Width {
			fmt.Fprintf(c.out, "Coordinates must be within 1..%d and 1..%d.\n", board.Width, board.Height)
			continue
		}

		result := board.ApplyAction(move.Row, move.Col, move.Kind)
		c.log.WithFields(logrus.Fields{
			"row":    move.Row,
			"col":    move.Col,
			"action": move.Kind.String(),
			"result": result.String(),
		}).Debug("turn")

		if result == mines.Invalid {
			fmt.Fprintln(c.out, MessageInvalid)
		}
	}

	state := board.State()
	switch state {
	case mines.Lost:
		fmt.Fprintln(c.out, MessageLost)
	case mines.Won:
		fmt.Fprintln(c.out, MessageWon)
	}
	fmt.Fprintln(c.out)
	err := Frame(c.out, board.RenderRows(state == mines.Lost))

	c.log.WithFields(logrus.Fields{
		"board": board.Params.String(),
		"state": state.String(),
		"turns": board.TurnCount(),
	}).Info("game over")

	return state, err
}
