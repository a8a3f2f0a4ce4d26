package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		colour chess.Colour
		want   bool
	}{
		{
			name: "rook on open file",
			rows: []string{
				"....r..k", "........", "........", "........",
				"........", "........", "........", "....K...",
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "rook blocked",
			rows: []string{
				"....r..k", "........", "........", "....N...",
				"........", "........", "........", "....K...",
			},
			colour: chess.White,
			want:   false,
		},
		{
			name: "bishop diagonal",
			rows: []string{
				".......k", "........", "........", "........",
				".b......", "........", "........", "....K...",
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "knight",
			rows: []string{
				".......k", "........", "........", "........",
				"........", "...n....", "........", "....K...",
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "black pawn attacks diagonally downwards",
			rows: []string{
				".......k", "........", "........", "...p....",
				"....K...", "........", "........", "........",
			},
			colour: chess.White,
			want:   true,
		},
		{
			name: "pawn straight ahead does not attack",
			rows: []string{
				".......k", "........", "........", "....p...",
				"....K...", "........", "........", "........",
			},
			colour: chess.White,
			want:   false,
		},
		{
			name: "white pawn attacks black king",
			rows: []string{
				"K.......", "........", "........", "...k....",
				"....P...", "........", "........", "........",
			},
			colour: chess.Black,
			want:   true,
		},
		{
			name: "own pieces never check",
			rows: []string{
				"k.......", "........", "........", "........",
				"....Q...", "........", "........", "....K...",
			},
			colour: chess.White,
			want:   false,
		},
		{
			name: "no king on the board",
			rows: []string{
				"....r...", "........", "........", "........",
				"........", "........", "........", "........",
			},
			colour: chess.White,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.rows...)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v\n%s", tt.colour, got, tt.want, board)
			}
		})
	}
}

func TestIsInCheck_InitialPosition(t *testing.T) {
	board := chess.InitialBoard()
	testutil.AssertFalse(t, IsInCheck(board, chess.White), "white")
	testutil.AssertFalse(t, IsInCheck(board, chess.Black), "black")
}

func TestAttackers(t *testing.T) {
	board := testutil.MustBoard(t,
		"....r..k",
		"........",
		"........",
		"........",
		".b......",
		"...n....",
		"........",
		"....K...",
	)

	got := Attackers(board, chess.Pos(7, 4), chess.Black)
	want := []chess.Position{chess.Pos(0, 4), chess.Pos(4, 1), chess.Pos(5, 3)}
	testutil.AssertEqual(t, got, want)

	testutil.AssertNil(t, Attackers(board, chess.Pos(7, 4), chess.White))
	testutil.AssertNil(t, Attackers(board, chess.Pos(8, 4), chess.Black))
}
