// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRow returns the row on which the colour's pawns start.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// BackRow returns the colour's back rank row.
func (c Colour) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PromotionRow returns the farthest row from the colour's start.
func (c Colour) PromotionRow() int {
	return c.Opposite().BackRow()
}

// PieceKind is the type of a chess piece.
type PieceKind int

const (
	NoKind PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

var kindNames = [NumPieceKinds]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && k < NumPieceKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := [NumPieceKinds]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && k < NumPieceKinds {
		return letters[k]
	}
	return '?'
}

// Piece is an immutable piece value. The zero Piece is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the contents of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(kind PieceKind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the diagram letter: uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.IsEmpty() {
		return letter
	}
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8
	FirstRow  = 0
	LastRow   = BoardSize - 1
	FirstCol  = 0
	LastCol   = BoardSize - 1
)

// Position identifies a square: row 0 is the top (black's back rank),
// column 0 is the left edge.
type Position struct {
	Row int
	Col int
}

// Pos is a shorthand constructor for a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Valid reports whether both coordinates are on the board.
func (p Position) Valid() bool {
	return p.Row >= FirstRow && p.Row <= LastRow && p.Col >= FirstCol && p.Col <= LastCol
}

// Check returns a *errors.PositionError if p is off the board.
func (p Position) Check(field string) error {
	if p.Valid() {
		return nil
	}
	return &errors.PositionError{Field: field, Row: p.Row, Col: p.Col}
}

// Offset returns the position shifted by the given deltas. The result may be invalid.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move is a request to move the piece at From to To.
type Move struct {
	From Position
	To   Position
}

// MoveOf is a shorthand constructor for a Move.
func MoveOf(fromRow, fromCol, toRow, toCol int) Move {
	return Move{From: Pos(fromRow, fromCol), To: Pos(toRow, toCol)}
}

// Check validates both endpoints of the move.
func (m Move) Check() error {
	if err := m.From.Check("from"); err != nil {
		return err
	}
	return m.To.Check("to")
}

// RowDelta returns To.Row - From.Row.
func (m Move) RowDelta() int {
	return m.To.Row - m.From.Row
}

// ColDelta returns To.Col - From.Col.
func (m Move) ColDelta() int {
	return m.To.Col - m.From.Col
}

// IsNull reports whether the move does not change square.
func (m Move) IsNull() bool {
	return m.From == m.To
}

// String returns "(r,c)->(r,c)".
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// GameStatus is derived from a board and the side to move.
type GameStatus int

const (
	InProgress GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lower-case status name.
func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsOver reports whether no further moves can be played.
func (s GameStatus) IsOver() bool {
	return s == Checkmate || s == Stalemate
}
