package chess

import "strings"

// Board is an 8x8 grid of squares indexed [row][col].
// Because it is an array of values, assigning a Board copies every square.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard chess starting position.
func InitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[Black.BackRow()][col] = B(backRank[col])
		b.Squares[Black.PawnRow()][col] = B(Pawn)
		b.Squares[White.PawnRow()][col] = W(Pawn)
		b.Squares[White.BackRow()][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// PieceAt returns the piece at pos, or NoPiece for an empty square.
func (b *Board) PieceAt(pos Position) (Piece, error) {
	if err := pos.Check(""); err != nil {
		return NoPiece, err
	}
	return b.Squares[pos.Row][pos.Col], nil
}

// Set places a piece at pos. Setting NoPiece clears the square.
func (b *Board) Set(pos Position, piece Piece) error {
	if err := pos.Check(""); err != nil {
		return err
	}
	b.Squares[pos.Row][pos.Col] = piece
	return nil
}

// at returns the piece at an already validated position.
func (b *Board) at(pos Position) Piece {
	return b.Squares[pos.Row][pos.Col]
}

// Get returns the piece at pos, or NoPiece if pos is off the board.
// It is intended for callers that have already validated pos.
func (b *Board) Get(pos Position) Piece {
	if !pos.Valid() {
		return NoPiece
	}
	return b.at(pos)
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.Valid() && b.at(pos).IsEmpty()
}

// Occupied reports whether pos is on the board and holds a piece.
func (b *Board) Occupied(pos Position) bool {
	return pos.Valid() && !b.at(pos).IsEmpty()
}

// OwnedBy reports whether pos holds a piece of the given colour.
func (b *Board) OwnedBy(pos Position, colour Colour) bool {
	if !b.Occupied(pos) {
		return false
	}
	return b.at(pos).Colour == colour
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// WithPieceMoved returns a new board on which the piece at move.From has been
// moved to move.To and move.From cleared. The receiver is not modified.
func (b *Board) WithPieceMoved(move Move) (*Board, error) {
	if err := move.Check(); err != nil {
		return nil, err
	}
	next := b.Clone()
	next.Squares[move.To.Row][move.To.Col] = next.at(move.From)
	next.Squares[move.From.Row][move.From.Col] = NoPiece
	return next, nil
}

// Square pairs a position with the piece standing on it.
type Square struct {
	Pos   Position
	Piece Piece
}

// Pieces returns every piece of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []Square {
	var squares []Square
	for row := FirstRow; row <= LastRow; row++ {
		for col := FirstCol; col <= LastCol; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Square{Pos: Pos(row, col), Piece: p})
			}
		}
	}
	return squares
}

// FindKing returns the position of the colour's king. The boolean is false
// when the board has no such king.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	king := Piece{Kind: King, Colour: colour}
	for row := FirstRow; row <= LastRow; row++ {
		for col := FirstCol; col <= LastCol; col++ {
			if b.Squares[row][col] == king {
				return Pos(row, col), true
			}
		}
	}
	return Position{}, false
}

// String renders the board as eight lines of piece letters, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := FirstRow; row <= LastRow; row++ {
		for col := FirstCol; col <= LastCol; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
