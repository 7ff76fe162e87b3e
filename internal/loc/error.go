package loc

import "fmt"

// ErrorKind classifies an ExpandError the way a caller needs to branch on
// (parse failure vs. a programmer error vs. a rejected filter name).
type ErrorKind int

const (
	Parse ErrorKind = iota
	UnknownFilter
	InvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case Parse:
		return "Parse"
	case UnknownFilter:
		return "UnknownFilter"
	case InvalidInput:
		return "InvalidInput"
	}
	return "Invalid(ErrorKind)"
}

// diagnosticCode maps a Kind to the DiagnosticCode a Handler would file
// the equivalent event under, so ExpandError and DiagnosticMessage agree
// on classification instead of maintaining it twice.
func (k ErrorKind) diagnosticCode() DiagnosticCode {
	switch k {
	case Parse:
		return ERROR_PARSE
	case InvalidInput:
		return ERROR_INVALID_INPUT
	default:
		return ERROR
	}
}

// ExpandError is the sole error type Expand returns. Range anchors the
// failure to a span of the abbreviation (its start offset, and a length
// when one is known), or is nil when the error has no single anchor
// point.
type ExpandError struct {
	Kind    ErrorKind
	Message string
	Range   *Range
}

// NewParseError builds an ExpandError anchored at the 0-based byte offset
// where the parser detected the failure. length is 0 when only a single
// point (not a span) is known; position < 0 means no anchor is known at
// all, leaving Range nil.
func NewParseError(message string, position, length int) *ExpandError {
	e := &ExpandError{Kind: Parse, Message: message}
	if position >= 0 {
		e.Range = &Range{Loc: Loc{Start: position}, Len: length}
	}
	return e
}

func NewInvalidInputError(message string) *ExpandError {
	return &ExpandError{Kind: InvalidInput, Message: message}
}

func (e *ExpandError) Error() string {
	if e.Range != nil {
		return fmt.Sprintf("%s: %s (at %d)", e.Kind, e.Message, e.Range.Loc.Start)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Diagnostic converts e to the DiagnosticMessage form a Handler-backed
// caller consumes alongside accumulated warnings (spec §7's single
// fatal-error / many-warnings split), carrying e.Range through as a
// DiagnosticLocation when one is known.
func (e *ExpandError) Diagnostic() DiagnosticMessage {
	msg := DiagnosticMessage{
		Code:     e.Kind.diagnosticCode(),
		Text:     e.Message,
		Severity: ErrorType,
	}
	if e.Range != nil {
		msg.Location = &DiagnosticLocation{Column: e.Range.Loc.Start, Length: e.Range.Len}
	}
	return msg
}
