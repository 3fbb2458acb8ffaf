package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/rookery/engine"
)

var ErrInvalidPlayer = errors.New("invalid player")

// Player is a human when Level is engine.LevelUnknown, otherwise a computer of that level.
type Player struct {
	Level engine.Level
}

func Human() Player {
	return Player{}
}

func Computer(l engine.Level) Player {
	return Player{Level: l}
}

func (p Player) IsHuman() bool {
	return p.Level == engine.LevelUnknown
}

func (p Player) String() string {
	if p.IsHuman() {
		return "human"
	}
	return fmt.Sprintf("computer%d", p.Level)
}

// ParsePlayer accepts "human" or "computer1" through "computer4".
func ParsePlayer(s string) (Player, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "human" {
		return Human(), nil
	}
	if rest, ok := strings.CutPrefix(s, "computer"); ok && len(rest) == 1 {
		l := engine.Level(rest[0] - '0')
		if l.Valid() {
			return Computer(l), nil
		}
	}
	return Player{}, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
}
