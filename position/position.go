package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// None is the sentinel for "no position".
	None = Pos{File: -1, Rank: -1}
)

// Pos is a board coordinate. File 0-7 maps to a-h, Rank 0-7 maps to 1-8.
type Pos struct {
	File, Rank int
}

func New(file, rank int) Pos {
	return Pos{File: file, Rank: rank}
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return None, err
	}
	return Pos{File: x, Rank: y}, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.NotationComponentX() + p.NotationComponentY()
}

// Valid reports whether both components are on the board.
func (p Pos) Valid() bool {
	return 0 <= p.File && p.File < MaxComponentScalar && 0 <= p.Rank && p.Rank < MaxComponentScalar
}

func (p Pos) IsNone() bool {
	return p == None
}

// Offset returns the position shifted by df files and dr ranks. The result may be off-board.
func (p Pos) Offset(df, dr int) Pos {
	return Pos{File: p.File + df, Rank: p.Rank + dr}
}

// Index returns the little-endian rank-file index, a1=0 .. h8=63.
func (p Pos) Index() int {
	return p.Rank*MaxComponentScalar + p.File
}

func FromIndex(i int) Pos {
	return Pos{File: i % MaxComponentScalar, Rank: i / MaxComponentScalar}
}

func notationToXY(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (int, error) {
	pX := int(x) - 'a'
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToY(y byte) (int, error) {
	pY := int(y) - '1'
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}

func (p Pos) NotationComponentX() string {
	if p.File < 0 || MaxComponentScalar <= p.File {
		return ""
	}
	return string(rune('a' + p.File))
}

func (p Pos) NotationComponentY() string {
	if p.Rank < 0 || MaxComponentScalar <= p.Rank {
		return ""
	}
	return string(rune('1' + p.Rank))
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 following the sign of x.
func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
