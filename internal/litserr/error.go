// Package litserr defines the error kinds exchanged across the LITS
// engine's rule kernel, search, and configuration layers, with
// sentinel causes that callers can match with errors.Is instead of
// string comparison.
package litserr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the engine's four error
// families.
type Kind int

const (
	// KindParse covers malformed notation of any kind.
	KindParse Kind = iota
	// KindRuleViolation covers a structurally valid move that the
	// rules forbid.
	KindRuleViolation
	// KindOracleUnavailable covers a missing or broken oracle.
	KindOracleUnavailable
	// KindConfig covers invalid configuration values.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindRuleViolation:
		return "rule violation"
	case KindOracleUnavailable:
		return "oracle unavailable"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is the engine's structured error type: a kind, a
// human-readable message built up by successive context wrapping, and
// an optional wrapped cause.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap exposes the wrapped cause, so errors.Is and errors.As see
// through context layers added by Wrap.
func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a fresh error of the given kind with a message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches additional outer context to an existing error, the way
// the rule kernel chains "Failed to play tetromino 'X' in position 'Y'."
// onto the specific validation failure that caused it. The resulting
// error keeps the innermost error's Kind.
func Wrap(err error, format string, args ...any) *Error {
	kind := KindRuleViolation
	var inner *Error
	if errors.As(err, &inner) {
		kind = inner.Kind
	}
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: err}
}

// Sentinel rule-violation causes. Rule-kernel functions return one of
// these (optionally wrapped with additional context via Wrap) so
// callers can branch with errors.Is rather than matching message text.
var (
	ErrNoSuchPiece        = New(KindRuleViolation, "there are no more copies of that tetromino")
	ErrOutOfBounds        = New(KindRuleViolation, "tetromino is not in bounds")
	ErrOverlap            = New(KindRuleViolation, "tetromino overlaps an existing piece")
	ErrNoAttach           = New(KindRuleViolation, "tetromino has no attach point")
	ErrSameColourAdjacent = New(KindRuleViolation, "tetromino attaches to a tetromino of the same colour")
	ErrFormsO             = New(KindRuleViolation, "tetromino forms a 2-by-2 square")
	ErrNoRemainingUndo    = New(KindRuleViolation, "there is no room to return that colour to the pool")
	ErrPieceNotOnBoard    = New(KindRuleViolation, "tetromino was not matched on the board")
	ErrHistoryEmpty       = New(KindRuleViolation, "there is no tetromino in the history")

	ErrOracleUnavailable = New(KindOracleUnavailable, "oracle is unavailable")
	ErrInvalidConfig     = New(KindConfig, "invalid configuration value")
)
