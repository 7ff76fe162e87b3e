package loc

// DiagnosticCode identifies the kind of problem encountered while expanding
// an abbreviation. Numeric bands group codes by severity rather than
// assigning them densely.
type DiagnosticCode int

const (
	ERROR                   DiagnosticCode = 1000
	ERROR_PARSE             DiagnosticCode = 1001
	ERROR_INVALID_INPUT     DiagnosticCode = 1002
	WARNING                 DiagnosticCode = 2000
	WARNING_UNKNOWN_FILTER  DiagnosticCode = 2001
	WARNING_UNKNOWN_CSS_KEY DiagnosticCode = 2002
	WARNING_UNKNOWN_TAG     DiagnosticCode = 2003
)

// DiagnosticSeverity mirrors the severities most editor protocols use.
type DiagnosticSeverity int

const (
	ErrorType DiagnosticSeverity = iota + 1
	WarningType
	InformationType
	HintType
)

// DiagnosticLocation pinpoints where in the original abbreviation a
// diagnostic applies.
type DiagnosticLocation struct {
	Line   int
	Column int
	Length int
}

// DiagnosticMessage is handed back to a caller that wants structured
// detail instead of a bare error string.
type DiagnosticMessage struct {
	Code     DiagnosticCode
	Text     string
	Severity DiagnosticSeverity
	Location *DiagnosticLocation
}
