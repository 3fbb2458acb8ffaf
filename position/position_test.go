package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     E4,
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos{File: 7, Rank: 7},
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos{File: 0, Rank: 0},
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "E4",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				if got != None {
					t.Errorf("unexpected result on error: got=%v want=None", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos  Pos
		want bool
	}{
		{pos: A1, want: true},
		{pos: H8, want: true},
		{pos: None, want: false},
		{pos: Pos{File: 8, Rank: 0}, want: false},
		{pos: Pos{File: 0, Rank: 8}, want: false},
		{pos: Pos{File: 3, Rank: -1}, want: false},
	}

	for _, tt := range tests {
		if got := tt.pos.Valid(); got != tt.want {
			t.Errorf("unexpected validity for %+v: got=%v want=%v", tt.pos, got, tt.want)
		}
	}
}

func TestNotation(t *testing.T) {
	t.Parallel()
	for i := 0; i < MaxComponentScalar*MaxComponentScalar; i++ {
		p := FromIndex(i)
		back, err := NewPosFromNotation(p.Notation())
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", i, err)
		}
		if back != p || back.Index() != i {
			t.Errorf("unexpected round trip: got=%v want=%v", back, p)
		}
	}
	if got := None.Notation(); got != "" {
		t.Errorf("unexpected notation for None: got=%q want=%q", got, "")
	}
	if got := E2.Offset(0, 2); got != E4 {
		t.Errorf("unexpected offset: got=%v want=%v", got, E4)
	}
}
