package board

type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	if s == SideWhite {
		return SideBlack
	}
	return SideWhite
}

// Forward returns the rank direction pawns of this side advance in.
func (s Side) Forward() int {
	if s == SideWhite {
		return 1
	}
	return -1
}

// HomeRank returns the rank the side's king and rooks start on.
func (s Side) HomeRank() int {
	if s == SideWhite {
		return 0
	}
	return Height - 1
}

// PawnRank returns the rank the side's pawns start on.
func (s Side) PawnRank() int {
	if s == SideWhite {
		return 1
	}
	return Height - 2
}

// PromotionRank returns the farthest rank for the side's pawns.
func (s Side) PromotionRank() int {
	if s == SideWhite {
		return Height - 1
	}
	return 0
}

func NewSideFromString(str string) (Side, bool) {
	switch str {
	case "white", "White", "w", "WHITE":
		return SideWhite, true
	case "black", "Black", "b", "BLACK":
		return SideBlack, true
	default:
		return SideWhite, false
	}
}
