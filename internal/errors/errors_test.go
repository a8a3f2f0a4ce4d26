package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrWrongTurn", ErrWrongTurn, ErrWrongTurn},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrSessionNotFound", ErrSessionNotFound, ErrSessionNotFound},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidPosition) {
		t.Error("ErrIllegalMove must not match ErrInvalidPosition")
	}
	if errors.Is(ErrWrongTurn, ErrIllegalMove) {
		t.Error("ErrWrongTurn must not match ErrIllegalMove")
	}
}

func TestPositionError(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{"with field", &PositionError{Field: "to", Row: 8, Col: 3}, []string{"to", "(8,3)", "invalid position"}},
		{"without field", &PositionError{Row: -1, Col: 0}, []string{"(-1,0)", "invalid position"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
			if !errors.Is(tt.err, ErrInvalidPosition) {
				t.Error("errors.Is(PositionError, ErrInvalidPosition) = false, want true")
			}
		})
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:       ErrIllegalMove,
				SessionID: "abc",
				Ply:       12,
				Move:      "(6,4)->(3,4)",
			},
			contains: []string{"session abc", "ply 12", "(6,4)->(3,4)", "illegal move"},
		},
		{
			name:     "error only",
			err:      &MoveError{Err: ErrWrongTurn},
			contains: []string{"not this side's turn"},
		},
		{
			name:     "context only",
			err:      &MoveError{Ply: 3},
			contains: []string{"ply 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Ply: 24, Move: "(7,4)->(7,6)"}
	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidConfig, "loading config.yaml")

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "loading config.yaml") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d in game %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}
