package mines

import (
	"fmt"
	"strings"
)

type ActionKind int

const (
	Reveal ActionKind = iota
	Flag
)

// ParseActionKind accepts the console words ("free", "mine") as well as
// "reveal" and "flag".
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "reveal", "open":
		return Reveal, nil
	case "mine", "flag":
		return Flag, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

func (k ActionKind) String() string {
	switch k {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// [ActionKind] implements [encoding.TextMarshaler]
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// [*ActionKind] implements [encoding.TextUnmarshaler]
func (k *ActionKind) UnmarshalText(text []byte) error {
	kind, err := ParseActionKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

type ActionResult int

const (
	Cleared ActionResult = iota
	MineHit
	Invalid
)

func (r ActionResult) String() string {
	switch r {
	case Cleared:
		return "cleared"
	case MineHit:
		return "mine_hit"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("ActionResult(%d)", int(r))
	}
}

// [ActionResult] implements [encoding.TextMarshaler]
func (r ActionResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type State int

const (
	NotStarted State = iota
	InProgress
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// [State] implements [encoding.TextMarshaler]
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s State) Finished() bool {
	return s == Lost || s == Won
}
