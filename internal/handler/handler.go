// Package handler accumulates the non-fatal diagnostics produced while
// expanding an abbreviation. The engine itself never prints; callers that
// want more than the returned string/error decide what, if anything, to do
// with the accumulated warnings.
package handler

import "github.com/emmetio/goexpand/internal/loc"

type Handler struct {
	warnings []loc.DiagnosticMessage
}

func NewHandler() *Handler {
	return &Handler{warnings: make([]loc.DiagnosticMessage, 0)}
}

func (h *Handler) AppendWarning(code loc.DiagnosticCode, message string) {
	h.warnings = append(h.warnings, loc.DiagnosticMessage{
		Code:     code,
		Text:     message,
		Severity: loc.WarningType,
	})
}

func (h *Handler) HasWarnings() bool {
	return len(h.warnings) > 0
}

func (h *Handler) Warnings() []loc.DiagnosticMessage {
	return h.warnings
}
