package board

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/rookery/position"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func mustPlay(t *testing.T, b *Board, mvs ...string) {
	t.Helper()
	for _, s := range mvs {
		mv, err := NewMoveFromUCI(s)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if !b.ApplyMove(mv) {
			t.Fatalf("move rejected: %s on %s", s, b.FEN())
		}
	}
}

func TestNewBoard(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.FEN(); got != DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN: got=%s want=%s", got, DefaultStartingPositionFEN)
	}

	empty, err := NewBoard(WithEmpty())
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for i := 0; i < TotalCells; i++ {
		if c, ok := empty.PieceAt(position.FromIndex(i)); ok {
			t.Errorf("unexpected piece on empty board: got=%v at %s", c, position.FromIndex(i))
		}
	}
	if _, ok := b.PieceAt(position.New(8, 0)); ok {
		t.Error("unexpected piece off board")
	}
	if c, _ := b.PieceAt(position.D8); !c.Is(PieceQueen, SideBlack) {
		t.Errorf("unexpected piece on d8: got=%v want=q", c)
	}

	if _, err := NewBoard(WithFEN("")); !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("unexpected error for empty FEN: got=%v want=%v", err, ErrInvalidFEN)
	}
}

func TestPseudoLegalMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		from position.Pos
		want []position.Pos
	}{
		{
			name: "rook stops before friend and on enemy",
			fen:  "4k3/8/8/8/8/P7/8/R2n2K1 w - - 0 1",
			from: position.A1,
			want: []position.Pos{position.A2, position.B1, position.C1, position.D1},
		},
		{
			name: "bishop blocked by both colours",
			fen:  "4k3/8/8/8/8/1P1p4/2B5/4K3 w - - 0 1",
			from: position.C2,
			want: []position.Pos{position.D3, position.D1, position.B1},
		},
		{
			name: "knight in corner",
			fen:  "4k3/8/8/8/8/8/2P5/N3K3 w - - 0 1",
			from: position.A1,
			want: []position.Pos{position.B3},
		},
		{
			name: "pawn on start rank",
			fen:  "4k3/8/8/8/8/3p4/4P3/4K3 w - - 0 1",
			from: position.E2,
			want: []position.Pos{position.E3, position.E4, position.D3},
		},
		{
			name: "pawn double step blocked",
			fen:  "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1",
			from: position.E2,
			want: []position.Pos{position.E3},
		},
		{
			name: "black pawn with en passant",
			fen:  "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
			from: position.D4,
			want: []position.Pos{position.D3, position.E3},
		},
		{
			name: "king with both castles",
			fen:  "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			from: position.E1,
			want: []position.Pos{
				position.E2, position.F2, position.F1, position.D1, position.D2,
				position.G1, position.C1,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := mustBoard(t, tt.fen)
			got := b.PseudoLegalMovesFrom(tt.from)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected destinations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPseudoLegalMovesNeverHitFriends(t *testing.T) {
	t.Parallel()

	for _, fen := range []string{
		DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		b := mustBoard(t, fen)
		for i := 0; i < TotalCells; i++ {
			from := position.FromIndex(i)
			c, ok := b.PieceAt(from)
			if !ok {
				continue
			}
			for _, to := range b.PseudoLegalMovesFrom(from) {
				if dst, ok := b.PieceAt(to); ok && dst.Side == c.Side {
					t.Errorf("friendly destination: %s %s->%s on %s", c, from, to, fen)
				}
				if c.Piece == PieceBishop || c.Piece == PieceRook || c.Piece == PieceQueen {
					if !b.IsPathClear(from, to) {
						t.Errorf("slider jumped a blocker: %s %s->%s on %s", c, from, to, fen)
					}
				}
			}
		}
	}
}

func TestApplyRejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		mv   string
	}{
		{name: "empty square", fen: DefaultStartingPositionFEN, mv: "e4e5"},
		{name: "opponent piece", fen: DefaultStartingPositionFEN, mv: "e7e5"},
		{name: "unreachable", fen: DefaultStartingPositionFEN, mv: "e2e5"},
		{name: "friendly capture", fen: DefaultStartingPositionFEN, mv: "a1a2"},
		{name: "into check", fen: "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", mv: "e1e2"},
		{name: "pinned piece", fen: "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", mv: "e2d3"},
		{name: "castle through attack", fen: "4kr2/8/8/8/8/8/8/4K2R w K - 0 1", mv: "e1g1"},
		{name: "castle into attack", fen: "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1", mv: "e1g1"},
		{name: "castle out of check", fen: "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", mv: "e1g1"},
		{name: "castle without rights", fen: "4k3/8/8/8/8/8/8/4K2R w - - 0 1", mv: "e1g1"},
		{name: "castle blocked", fen: "4k3/8/8/8/8/8/8/RN2K3 w Q - 0 1", mv: "e1c1"},
		{name: "castle without rook", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", mv: "e1g1"},
		{name: "en passant exposing king", fen: "8/8/8/KPp4r/8/8/8/7k w - c6 0 1", mv: "b5c6"},
		{name: "en passant too late", fen: "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1", mv: "e5d6"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := mustBoard(t, tt.fen)
			before := *b
			mv, err := NewMoveFromUCI(tt.mv)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if b.ApplyMove(mv) {
				t.Errorf("move accepted: %s on %s", tt.mv, tt.fen)
			}
			if *b != before {
				t.Errorf("board mutated: got=%s want=%s", b.FEN(), before.FEN())
			}
		})
	}
}

func TestApplyFlipsTurn(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	for _, s := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		before := b.Turn()
		mustPlay(t, b, s)
		if got, want := b.Turn(), before.Opposite(); got != want {
			t.Errorf("unexpected turn after %s: got=%v want=%v", s, got, want)
		}
	}
}

func TestEnPassant(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	mustPlay(t, b, "e2e4", "a7a6", "e4e5", "d7d5")
	if got, want := b.LastDoubleMove(), position.D5; got != want {
		t.Fatalf("unexpected last double move: got=%v want=%v", got, want)
	}
	mustPlay(t, b, "e5d6")

	if c, ok := b.PieceAt(position.D6); !ok || !c.Is(PiecePawn, SideWhite) {
		t.Errorf("unexpected piece on d6: got=%v want=P", c)
	}
	if c, ok := b.PieceAt(position.D5); ok {
		t.Errorf("unexpected piece on d5: got=%v want=empty", c)
	}
	if c, ok := b.PieceAt(position.E5); ok {
		t.Errorf("unexpected piece on e5: got=%v want=empty", c)
	}
	if got := b.LastDoubleMove(); !got.IsNone() {
		t.Errorf("unexpected last double move: got=%v want=none", got)
	}
}

func TestEnPassantExpires(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	mustPlay(t, b, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "h7h6")
	if b.CanEnPassantCapture(position.E5, position.D6) {
		t.Error("en passant allowed after an intervening move")
	}
}

func TestPromotion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		promotion Piece
		want      Piece
	}{
		{name: "default", promotion: PieceUnknown, want: PieceQueen},
		{name: "knight", promotion: PieceKnight, want: PieceKnight},
		{name: "rook", promotion: PieceRook, want: PieceRook},
		{name: "invalid kind", promotion: PieceKing, want: PieceQueen},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := mustBoard(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
			if !b.Apply(position.A7, position.A8, tt.promotion) {
				t.Fatal("promotion rejected")
			}
			c, ok := b.PieceAt(position.A8)
			if !ok || !c.Is(tt.want, SideWhite) {
				t.Errorf("unexpected piece on a8: got=%v want=%v", c, tt.want)
			}
		})
	}
}

func TestFoolsMate(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	mustPlay(t, b, "f2f3", "e7e5", "g2g4", "d8h4")

	if !b.IsInCheck(SideWhite) {
		t.Error("expected White in check")
	}
	if got, want := b.IsCheckmate(SideWhite), true; got != want {
		t.Errorf("unexpected checkmate for White: got=%v want=%v", got, want)
	}
	if got, want := b.IsCheckmate(SideBlack), false; got != want {
		t.Errorf("unexpected checkmate for Black: got=%v want=%v", got, want)
	}
	if got, want := b.State(), StateCheckmate; got != want {
		t.Errorf("unexpected state: got=%v want=%v", got, want)
	}
}

func TestStalemate(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if got, want := b.IsStalemate(SideBlack), true; got != want {
		t.Errorf("unexpected stalemate: got=%v want=%v", got, want)
	}
	if got, want := b.IsCheckmate(SideBlack), false; got != want {
		t.Errorf("unexpected checkmate: got=%v want=%v", got, want)
	}
	if got, want := b.State(), StateStalemate; got != want {
		t.Errorf("unexpected state: got=%v want=%v", got, want)
	}
	if got := len(b.GenerateMoves()); got != 0 {
		t.Errorf("unexpected move count: got=%d want=0", got)
	}
}

func TestCastling(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		fen            string
		mv             string
		wantKing       position.Pos
		wantRook       position.Pos
		wantRookOrigin position.Pos
	}{
		{
			name: "white kingside", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mv: "e1g1",
			wantKing: position.G1, wantRook: position.F1, wantRookOrigin: position.H1,
		},
		{
			name: "white queenside", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mv: "e1c1",
			wantKing: position.C1, wantRook: position.D1, wantRookOrigin: position.A1,
		},
		{
			name: "black kingside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mv: "e8g8",
			wantKing: position.G8, wantRook: position.F8, wantRookOrigin: position.H8,
		},
		{
			name: "black queenside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", mv: "e8c8",
			wantKing: position.C8, wantRook: position.D8, wantRookOrigin: position.A8,
		},
		{
			name: "queenside with b-file attacked", fen: "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1", mv: "e1c1",
			wantKing: position.C1, wantRook: position.D1, wantRookOrigin: position.A1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := mustBoard(t, tt.fen)
			s := b.Turn()
			mustPlay(t, b, tt.mv)
			if c, _ := b.PieceAt(tt.wantKing); !c.Is(PieceKing, s) {
				t.Errorf("unexpected piece on %s: got=%v want=king", tt.wantKing, c)
			}
			if c, _ := b.PieceAt(tt.wantRook); !c.Is(PieceRook, s) {
				t.Errorf("unexpected piece on %s: got=%v want=rook", tt.wantRook, c)
			}
			if _, ok := b.PieceAt(tt.wantRookOrigin); ok {
				t.Errorf("rook origin %s not vacated", tt.wantRookOrigin)
			}
			if !b.HasKingMoved(s) {
				t.Error("expected king moved flag")
			}
		})
	}
}

func TestCastlingAfterKingMoved(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	mustPlay(t, b, "e1f1", "e8d8", "f1e1", "d8e8")
	if b.IsLegal(Move{From: position.E1, To: position.G1}) {
		t.Error("castling allowed after the king moved")
	}
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "4k3/8/8/8/8/8/6b1/R3K2R b KQ - 0 1")
	mustPlay(t, b, "g2h1")
	if got, want := b.HasRookMoved(SideWhite, true), true; got != want {
		t.Errorf("unexpected kingside rook flag: got=%v want=%v", got, want)
	}
	if got, want := b.HasRookMoved(SideWhite, false), false; got != want {
		t.Errorf("unexpected queenside rook flag: got=%v want=%v", got, want)
	}
	if got, want := b.FEN(), "4k3/8/8/8/8/8/8/R3K2b w Q - 0 2"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
}

func TestIsSquareAttacked(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fen      string
		sq       position.Pos
		defender Side
		want     bool
	}{
		{name: "pawn diagonal", fen: "4k3/8/8/8/8/3p4/8/4K3 w - - 0 1", sq: position.E2, defender: SideWhite, want: true},
		{name: "pawn forward", fen: "4k3/8/8/8/8/3p4/8/4K3 w - - 0 1", sq: position.D2, defender: SideWhite, want: false},
		{name: "knight", fen: "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", sq: position.E1, defender: SideWhite, want: true},
		{name: "bishop clear", fen: "4k3/8/8/b7/8/8/8/4K3 w - - 0 1", sq: position.E1, defender: SideWhite, want: true},
		{name: "bishop blocked", fen: "4k3/8/8/b7/8/2P5/8/4K3 w - - 0 1", sq: position.E1, defender: SideWhite, want: false},
		{name: "rook file", fen: "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", sq: position.E1, defender: SideWhite, want: true},
		{name: "queen diagonal", fen: "4k3/8/8/8/7q/8/8/4K3 w - - 0 1", sq: position.E1, defender: SideWhite, want: true},
		{name: "king adjacent", fen: "8/8/8/8/8/8/3k4/4K3 w - - 0 1", sq: position.E1, defender: SideWhite, want: true},
		{name: "own pieces ignored", fen: "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", sq: position.E1, defender: SideWhite, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := mustBoard(t, tt.fen)
			if got := b.IsSquareAttacked(tt.sq, tt.defender); got != tt.want {
				t.Errorf("unexpected attack on %s: got=%v want=%v", tt.sq, got, tt.want)
			}
		})
	}
}

func TestValidateSetup(t *testing.T) {
	t.Parallel()
	type piece struct {
		pos  position.Pos
		p    Piece
		side Side
	}
	tests := []struct {
		name    string
		pieces  []piece
		wantErr error
	}{
		{
			name:    "valid",
			pieces:  []piece{{position.E1, PieceKing, SideWhite}, {position.E8, PieceKing, SideBlack}},
			wantErr: nil,
		},
		{
			name:    "missing white king",
			pieces:  []piece{{position.E8, PieceKing, SideBlack}},
			wantErr: ErrWhiteKingCount,
		},
		{
			name: "two black kings",
			pieces: []piece{
				{position.E1, PieceKing, SideWhite},
				{position.E8, PieceKing, SideBlack},
				{position.A8, PieceKing, SideBlack},
			},
			wantErr: ErrBlackKingCount,
		},
		{
			name: "pawn on back rank",
			pieces: []piece{
				{position.E1, PieceKing, SideWhite},
				{position.E8, PieceKing, SideBlack},
				{position.A1, PiecePawn, SideWhite},
			},
			wantErr: ErrPawnOnBackRank,
		},
		{
			name: "king in check",
			pieces: []piece{
				{position.E1, PieceKing, SideWhite},
				{position.E8, PieceKing, SideBlack},
				{position.E4, PieceRook, SideBlack},
			},
			wantErr: ErrKingInCheck,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithEmpty())
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, p := range tt.pieces {
				if !b.PlacePiece(p.pos, p.p, p.side) {
					t.Fatalf("placement rejected: %v", p)
				}
			}
			if err := b.ValidateSetup(); !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestSetupMutators(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, DefaultStartingPositionFEN)
	b.ClearBoard()
	if got, want := b.FEN(), "8/8/8/8/8/8/8/8 w - - 0 1"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
	if b.RemovePiece(position.E1) {
		t.Error("removal from empty square reported success")
	}
	if b.PlacePiece(position.New(-1, 3), PieceQueen, SideWhite) {
		t.Error("off-board placement reported success")
	}
	b.PlacePiece(position.E1, PieceKing, SideWhite)
	b.PlacePiece(position.H1, PieceRook, SideWhite)
	b.PlacePiece(position.E8, PieceKing, SideBlack)
	b.SetTurn(SideBlack)
	if got, want := b.FEN(), "4k3/8/8/8/8/8/8/4K2R b K - 0 1"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
	if !b.RemovePiece(position.H1) {
		t.Error("removal reported failure")
	}
	if got, want := b.FEN(), "4k3/8/8/8/8/8/8/4K3 b - - 0 1"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
}

func TestAlgebra(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen  string
		mv   string
		want string
	}{
		{fen: DefaultStartingPositionFEN, mv: "e2e4", want: "e4"},
		{fen: DefaultStartingPositionFEN, mv: "g1f3", want: "Nf3"},
		{fen: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", mv: "e5d6", want: "exd6 e.p."},
		{fen: "4k3/8/8/8/8/8/8/4K2R w K - 0 1", mv: "e1g1", want: "0-0"},
		{fen: "3k4/P7/8/8/8/8/8/4K3 w - - 0 1", mv: "a7a8", want: "a8Q+"},
		{fen: "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", mv: "a1a8", want: "Ra8+"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.mv, func(t *testing.T) {
			t.Parallel()

			b := mustBoard(t, tt.fen)
			mv, err := NewMoveFromUCI(tt.mv)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := b.Algebra(mv); got != tt.want {
				t.Errorf("unexpected algebra: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestGenerateMovesPromotionOrder(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "7k/P7/8/8/8/8/8/K7 w - - 0 1")
	var got []string
	for _, mv := range b.GenerateMoves() {
		if mv.From == position.A7 {
			got = append(got, mv.UCI())
		}
	}
	want := []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected promotions (-want +got):\n%s", diff)
	}
}

func TestMoveKinds(t *testing.T) {
	t.Parallel()

	b := mustBoard(t, "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1")
	tests := []struct {
		uci           string
		wantCapture   bool
		wantEnPassant bool
		wantCastle    bool
	}{
		{uci: "e5d6", wantCapture: true, wantEnPassant: true},
		{uci: "e1g1", wantCastle: true},
		{uci: "e1c1", wantCastle: true},
		{uci: "e1f1"},
		{uci: "a1a8", wantCapture: true},
		{uci: "e5e6"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.uci, func(t *testing.T) {
			t.Parallel()
			mv, err := NewMoveFromUCI(tt.uci)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := b.IsCapture(mv); got != tt.wantCapture {
				t.Errorf("unexpected capture: got=%v want=%v", got, tt.wantCapture)
			}
			if got := b.IsEnPassant(mv); got != tt.wantEnPassant {
				t.Errorf("unexpected en passant: got=%v want=%v", got, tt.wantEnPassant)
			}
			if got := b.IsCastle(mv); got != tt.wantCastle {
				t.Errorf("unexpected castle: got=%v want=%v", got, tt.wantCastle)
			}
		})
	}
}

func sortedUCI(mvs []Move) []string {
	out := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		out = append(out, mv.UCI())
	}
	sort.Strings(out)
	return out
}
