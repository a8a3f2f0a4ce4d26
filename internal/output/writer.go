// Package output renders verdicts and game reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Writer is the interface for writing results to output.
type Writer interface {
	// WriteVerdict writes the answer for one move.
	WriteVerdict(v *Verdict) error

	// WriteReport writes one game or position report.
	WriteReport(r *GameReport) error
}

// New returns the writer selected by cfg.Output.Format, writing to w.
func New(w io.Writer, cfg *config.Config) Writer {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg.Output.Indent)
	}
	return NewTextWriter(w, cfg.Output.Diagrams)
}

// JSONWriter writes one JSON document per result.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer. An empty indent gives one compact
// document per line.
func NewJSONWriter(w io.Writer, indent string) *JSONWriter {
	enc := json.NewEncoder(w)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return &JSONWriter{enc: enc}
}

// WriteVerdict encodes v.
func (jw *JSONWriter) WriteVerdict(v *Verdict) error {
	return jw.enc.Encode(v)
}

// WriteReport encodes r.
func (jw *JSONWriter) WriteReport(r *GameReport) error {
	return jw.enc.Encode(r)
}

// TextWriter writes results for people to read.
type TextWriter struct {
	w        io.Writer
	diagrams bool
}

// NewTextWriter creates a text writer. With diagrams set, reports are
// followed by the board drawn with piece letters.
func NewTextWriter(w io.Writer, diagrams bool) *TextWriter {
	return &TextWriter{w: w, diagrams: diagrams}
}

// WriteVerdict writes e.g. "(6,4)->(4,4) legal".
func (tw *TextWriter) WriteVerdict(v *Verdict) error {
	var sb strings.Builder
	sb.WriteString(v.Move.Move().String())
	switch {
	case v.Error != "":
		sb.WriteString(" error: ")
		sb.WriteString(v.Error)
	case v.Legal:
		sb.WriteString(" legal")
	default:
		sb.WriteString(" illegal")
	}

	var tags []string
	if v.Castling {
		tags = append(tags, "castling")
	}
	if v.EnPassant {
		tags = append(tags, "en passant")
	}
	if v.Promotion {
		tags = append(tags, "promotion")
	}
	if len(tags) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(tags, ", "))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteReport writes a summary line followed by any detail lines and,
// with diagrams enabled, the board.
func (tw *TextWriter) WriteReport(r *GameReport) error {
	var sb strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&sb, "%s: ", r.Name)
	}
	fmt.Fprintf(&sb, "%s, %s to move after %d plies", r.Status, r.ToMove, r.Plies)
	if r.Winner != "" {
		fmt.Fprintf(&sb, ", %s wins", r.Winner)
	}
	sb.WriteByte('\n')

	if r.Error != "" {
		fmt.Fprintf(&sb, "  error: %s\n", r.Error)
	}
	if len(r.Checkers) > 0 {
		from := make([]string, len(r.Checkers))
		for i, p := range r.Checkers {
			from[i] = chess.Pos(p.Row, p.Col).String()
		}
		fmt.Fprintf(&sb, "  checked by %s\n", strings.Join(from, " "))
	}
	if len(r.LegalMoves) > 0 {
		moves := make([]string, len(r.LegalMoves))
		for i, m := range r.LegalMoves {
			moves[i] = m.Move().String()
		}
		fmt.Fprintf(&sb, "  %d legal moves: %s\n", len(moves), strings.Join(moves, " "))
	}
	if tw.diagrams {
		board, err := BoardFromJSON(&r.Board)
		if err != nil {
			return err
		}
		sb.WriteString(diagram(board))
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// diagram indents each board row and labels rows and columns by index.
func diagram(b *chess.Board) string {
	var sb strings.Builder
	sb.WriteString("    01234567\n")
	for row, line := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
		fmt.Fprintf(&sb, "  %d %s\n", row, line)
	}
	return sb.String()
}
