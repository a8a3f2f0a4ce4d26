package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var letterKinds = map[byte]chess.PieceKind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// ParseDiagram builds a board from eight rows of eight characters, row 0
// first. Uppercase letters are White, lowercase Black and '.' is empty.
// Spaces are ignored so rows may be written "r . . . k . . r".
func ParseDiagram(rows ...string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	b := chess.NewBoard()
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != chess.BoardSize {
			return nil, fmt.Errorf("diagram row %d %q has %d squares, want %d", row, line, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			colour := chess.White
			lower := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			} else {
				lower = c + ('a' - 'A')
			}
			kind, ok := letterKinds[lower]
			if !ok {
				return nil, fmt.Errorf("diagram row %d: unknown piece letter %q", row, c)
			}
			b.Squares[row][col] = chess.Piece{Kind: kind, Colour: colour}
		}
	}
	return b, nil
}

// MustBoard parses a diagram and calls t.Fatal on error.
func MustBoard(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	b, err := ParseDiagram(rows...)
	if err != nil {
		t.Fatalf("bad board diagram: %v", err)
	}
	return b
}

// FEN renders board with toMove to play, for feeding independent move
// generators in cross-check tests. Castling rights are granted wherever a
// king stands on its home square with a same-coloured rook on the matching
// corner, which is exactly when the engine under test would consider castling.
// The en passant field is always "-".
func FEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder
	for row := chess.FirstRow; row <= chess.LastRow; row++ {
		empty := 0
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row != chess.LastRow {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s %s - 0 1", sb.String(), side, castlingField(board))
}

func castlingField(board *chess.Board) string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := colour.BackRow()
		if !board.Squares[row][4].Is(chess.King, colour) {
			continue
		}
		kingside, queenside := byte('K'), byte('Q')
		if colour == chess.Black {
			kingside, queenside = 'k', 'q'
		}
		if board.Squares[row][chess.LastCol].Is(chess.Rook, colour) {
			sb.WriteByte(kingside)
		}
		if board.Squares[row][chess.FirstCol].Is(chess.Rook, colour) {
			sb.WriteByte(queenside)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
