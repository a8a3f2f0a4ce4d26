package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// JSONPiece is a piece as {"type": "knight", "color": "white"}.
type JSONPiece struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// JSONBoard is an 8x8 grid, row 0 first, with null for empty squares.
type JSONBoard [chess.BoardSize][chess.BoardSize]*JSONPiece

// JSONPosition is a square as {"row": r, "col": c}.
type JSONPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// JSONMove is a move as {"from": {...}, "to": {...}}.
type JSONMove struct {
	From JSONPosition `json:"from"`
	To   JSONPosition `json:"to"`
}

// Request is a position query: a board (the initial position if omitted),
// the side to move, an optional move to judge and the move played before it.
type Request struct {
	Board    *JSONBoard `json:"board,omitempty"`
	ToMove   string     `json:"toMove,omitempty"`
	Move     *JSONMove  `json:"move,omitempty"`
	LastMove *JSONMove  `json:"lastMove,omitempty"`
}

// GameRequest is a named move list to replay from the initial position.
type GameRequest struct {
	Name  string     `json:"name,omitempty"`
	Moves []JSONMove `json:"moves"`
}

// Verdict is the answer to whether a single move is legal.
type Verdict struct {
	Move      JSONMove `json:"move"`
	Legal     bool     `json:"legal"`
	Castling  bool     `json:"castling,omitempty"`
	EnPassant bool     `json:"enPassant,omitempty"`
	Promotion bool     `json:"promotion,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// GameReport describes a position reached by play.
type GameReport struct {
	Name       string         `json:"name,omitempty"`
	SessionID  string         `json:"sessionId,omitempty"`
	Plies      int            `json:"plies"`
	ToMove     string         `json:"toMove"`
	Status     string         `json:"status"`
	InCheck    bool           `json:"inCheck"`
	Winner     string         `json:"winner,omitempty"`
	Checkers   []JSONPosition `json:"checkers,omitempty"` // pieces giving check
	Board      JSONBoard      `json:"board"`
	LegalMoves []JSONMove     `json:"legalMoves,omitempty"`
	Error      string         `json:"error,omitempty"`
}

var kindByName = map[string]chess.PieceKind{
	"pawn":   chess.Pawn,
	"knight": chess.Knight,
	"bishop": chess.Bishop,
	"rook":   chess.Rook,
	"queen":  chess.Queen,
	"king":   chess.King,
}

// ColourName returns "white" or "black".
func ColourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// ParseColour accepts "white" or "black" in any case.
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown colour %q", s)
}

// PieceToJSON converts a piece; empty squares become nil.
func PieceToJSON(p chess.Piece) *JSONPiece {
	if p.IsEmpty() {
		return nil
	}
	return &JSONPiece{
		Type:  strings.ToLower(p.Kind.String()),
		Color: ColourName(p.Colour),
	}
}

// PieceFromJSON converts a JSON piece; nil is an empty square.
func PieceFromJSON(jp *JSONPiece) (chess.Piece, error) {
	if jp == nil {
		return chess.NoPiece, nil
	}
	kind, ok := kindByName[strings.ToLower(jp.Type)]
	if !ok {
		return chess.NoPiece, fmt.Errorf("unknown piece type %q", jp.Type)
	}
	colour, err := ParseColour(jp.Color)
	if err != nil {
		return chess.NoPiece, err
	}
	return chess.Piece{Kind: kind, Colour: colour}, nil
}

// BoardToJSON converts a board.
func BoardToJSON(b *chess.Board) JSONBoard {
	var jb JSONBoard
	for row := chess.FirstRow; row <= chess.LastRow; row++ {
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			jb[row][col] = PieceToJSON(b.Squares[row][col])
		}
	}
	return jb
}

// BoardFromJSON converts a JSON board, reporting the first bad square.
func BoardFromJSON(jb *JSONBoard) (*chess.Board, error) {
	b := chess.NewBoard()
	for row := chess.FirstRow; row <= chess.LastRow; row++ {
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			p, err := PieceFromJSON(jb[row][col])
			if err != nil {
				return nil, errors.Wrapf(err, "square %v", chess.Pos(row, col))
			}
			b.Squares[row][col] = p
		}
	}
	return b, nil
}

// MoveToJSON converts a move.
func MoveToJSON(m chess.Move) JSONMove {
	return JSONMove{
		From: JSONPosition{Row: m.From.Row, Col: m.From.Col},
		To:   JSONPosition{Row: m.To.Row, Col: m.To.Col},
	}
}

// MovesToJSON converts a move list, keeping nil as nil.
func MovesToJSON(moves []chess.Move) []JSONMove {
	if moves == nil {
		return nil
	}
	out := make([]JSONMove, len(moves))
	for i, m := range moves {
		out[i] = MoveToJSON(m)
	}
	return out
}

// Move converts back to a chess.Move without range checks; the engine
// reports off-board coordinates itself.
func (jm JSONMove) Move() chess.Move {
	return chess.MoveOf(jm.From.Row, jm.From.Col, jm.To.Row, jm.To.Col)
}

// Position resolves the request's board and side to move, defaulting to
// the initial position with White to move.
func (r *Request) Position() (*chess.Board, chess.Colour, error) {
	board := chess.InitialBoard()
	if r.Board != nil {
		b, err := BoardFromJSON(r.Board)
		if err != nil {
			return nil, chess.White, err
		}
		board = b
	}

	toMove := chess.White
	if r.ToMove != "" {
		c, err := ParseColour(r.ToMove)
		if err != nil {
			return nil, chess.White, err
		}
		toMove = c
	}
	return board, toMove, nil
}

// Decoder reads a stream of JSON documents.
type Decoder struct {
	dec *json.Decoder
}

// NewDecoder creates a decoder that rejects unknown fields.
func NewDecoder(r io.Reader) *Decoder {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return &Decoder{dec: dec}
}

// More reports whether another document follows.
func (d *Decoder) More() bool {
	return d.dec.More()
}

// DecodeRequest reads the next Request.
func (d *Decoder) DecodeRequest() (*Request, error) {
	var req Request
	if err := d.dec.Decode(&req); err != nil {
		return nil, errors.Wrap(err, "decode request")
	}
	return &req, nil
}

// DecodeGame reads the next GameRequest.
func (d *Decoder) DecodeGame() (*GameRequest, error) {
	var g GameRequest
	if err := d.dec.Decode(&g); err != nil {
		return nil, errors.Wrap(err, "decode game")
	}
	return &g, nil
}

// Last returns the request's previous move, or nil.
func (r *Request) Last() *chess.Move {
	if r.LastMove == nil {
		return nil
	}
	m := r.LastMove.Move()
	return &m
}
