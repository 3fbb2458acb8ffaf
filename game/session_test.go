package game

import (
	"context"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/daystram/rookery/board"
	"github.com/daystram/rookery/engine"
	"github.com/daystram/rookery/position"
)

var testLogger = &log.Logger{Handler: discard.New(), Level: log.InfoLevel}

func newTestSession() *Session {
	return NewSession(WithLogger(testLogger), WithSeed(3))
}

func mustMove(t *testing.T, s *Session, from, to position.Pos) Outcome {
	t.Helper()
	o, err := s.Move(from, to, board.PieceUnknown)
	if err != nil {
		t.Fatalf("unexpected error for %s%s: %v", from, to, err)
	}
	return o
}

func TestParsePlayer(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Player
		wantErr bool
	}{
		{in: "human", want: Human()},
		{in: "Computer3", want: Computer(engine.LevelCautious)},
		{in: "computer4", want: Computer(engine.LevelEvaluate)},
		{in: "computer5", wantErr: true},
		{in: "computer", wantErr: true},
		{in: "robot", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePlayer(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPlayer) {
					t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidPlayer)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got != tt.want {
				t.Errorf("unexpected player: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestSessionFoolsMateScores(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if _, err := s.Move(position.E2, position.E4, board.PieceUnknown); !errors.Is(err, ErrNoGame) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoGame)
	}
	if err := s.Start(Human(), Human()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := s.Start(Human(), Human()); !errors.Is(err, ErrGameInProgress) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrGameInProgress)
	}

	mustMove(t, s, position.F2, position.F3)
	mustMove(t, s, position.E7, position.E5)
	mustMove(t, s, position.G2, position.G4)
	o := mustMove(t, s, position.D8, position.H4)

	if !o.Over || o.Reason != ReasonCheckmate || o.Winner != board.SideBlack {
		t.Errorf("unexpected outcome: got=%+v", o)
	}
	if got, want := o.String(), "Checkmate! Black wins!"; got != want {
		t.Errorf("unexpected message: got=%s want=%s", got, want)
	}
	if s.InProgress() {
		t.Error("game still in progress after checkmate")
	}
	white, black := s.Score()
	if white != 0 || black != 1 {
		t.Errorf("unexpected score: got=%v-%v want=0-1", white, black)
	}
}

func TestSessionIllegalMove(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if err := s.Start(Human(), Human()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, err := s.Move(position.E2, position.E5, board.PieceUnknown); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalMove)
	}
	if got, want := s.Board().Turn(), board.SideWhite; got != want {
		t.Errorf("unexpected turn: got=%v want=%v", got, want)
	}
}

func TestSessionCheckAndResign(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if err := s.Start(Human(), Human()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	mustMove(t, s, position.E2, position.E4)
	mustMove(t, s, position.F7, position.F6)
	o := mustMove(t, s, position.D1, position.H5)
	if got, want := o.String(), "Check!"; got != want {
		t.Errorf("unexpected message: got=%s want=%s", got, want)
	}

	o, err := s.Resign()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got, want := o.String(), "Black resigns. White wins!"; got != want {
		t.Errorf("unexpected message: got=%s want=%s", got, want)
	}
	white, black := s.Score()
	if white != 1 || black != 0 {
		t.Errorf("unexpected score: got=%v-%v want=1-0", white, black)
	}
	if _, err := s.Resign(); !errors.Is(err, ErrNoGame) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoGame)
	}
}

func TestSessionCastle(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if err := s.EnterSetup(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	for _, p := range []struct {
		pos  position.Pos
		p    board.Piece
		side board.Side
	}{
		{position.E1, board.PieceKing, board.SideWhite},
		{position.H1, board.PieceRook, board.SideWhite},
		{position.E8, board.PieceKing, board.SideBlack},
	} {
		if err := s.Place(p.pos, p.p, p.side); err != nil {
			t.Fatal("unexpected error:", err)
		}
	}
	if err := s.ExitSetup(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := s.Start(Human(), Human()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, err := s.Castle(false); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalMove)
	}
	if _, err := s.Castle(true); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got, want := s.Board().FEN(), "4k3/8/8/8/8/8/8/5RK1 b - - 1 1"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
}

func TestSessionSetup(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if err := s.Place(position.E1, board.PieceKing, board.SideWhite); !errors.Is(err, ErrNotSetupMode) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNotSetupMode)
	}
	if err := s.EnterSetup(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := s.Start(Human(), Human()); !errors.Is(err, ErrSetupMode) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrSetupMode)
	}
	if err := s.ExitSetup(); !errors.Is(err, board.ErrWhiteKingCount) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrWhiteKingCount)
	}
	if !s.InSetup() {
		t.Fatal("left setup mode after a failed validation")
	}

	// stalemate: black king cornered by queen and king
	_ = s.Place(position.H8, board.PieceKing, board.SideBlack)
	_ = s.Place(position.F7, board.PieceQueen, board.SideWhite)
	_ = s.Place(position.G6, board.PieceKing, board.SideWhite)
	_ = s.Place(position.A1, board.PiecePawn, board.SideWhite)
	if err := s.ExitSetup(); !errors.Is(err, board.ErrPawnOnBackRank) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrPawnOnBackRank)
	}
	if err := s.Remove(position.A1); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := s.Remove(position.A1); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidPlacement)
	}
	if err := s.SetTurn(board.SideBlack); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := s.ExitSetup(); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if err := s.Start(Human(), Human()); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if o := s.Last(); !o.IsDraw() {
		t.Errorf("unexpected outcome: got=%+v want=stalemate", o)
	}
	white, black := s.Score()
	if white != 0.5 || black != 0.5 {
		t.Errorf("unexpected score: got=%v-%v want=0.5-0.5", white, black)
	}
}

func TestSessionComputerGame(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if err := s.Start(Human(), Computer(engine.LevelEvaluate)); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, _, err := s.ComputerMove(context.Background()); !errors.Is(err, ErrHumanTurn) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrHumanTurn)
	}
	mustMove(t, s, position.E2, position.E4)
	if _, err := s.Move(position.E7, position.E5, board.PieceUnknown); !errors.Is(err, ErrComputerTurn) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrComputerTurn)
	}
	mv, _, err := s.ComputerMove(context.Background())
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if c, ok := s.Board().PieceAt(mv.To); !ok || c.Side != board.SideBlack {
		t.Errorf("unexpected piece on %s: got=%v", mv.To, c)
	}
}

func TestSessionComputerSelfPlayFinishes(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if err := s.Start(Computer(engine.LevelGreedy), Computer(engine.LevelRandom)); err != nil {
		t.Fatal("unexpected error:", err)
	}
	for ply := 0; ply < 60 && s.InProgress(); ply++ {
		if _, _, err := s.ComputerMove(context.Background()); err != nil {
			t.Fatal("unexpected error:", err)
		}
	}
	if s.InProgress() {
		if _, err := s.Resign(); err != nil {
			t.Fatal("unexpected error:", err)
		}
	}
	white, black := s.Score()
	if white+black != 1 {
		t.Errorf("unexpected score total: got=%v want=1", white+black)
	}
}
