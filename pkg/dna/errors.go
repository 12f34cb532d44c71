package dna

import "fmt"

// ErrorKind classifies analysis pipeline failures so callers can decide
// whether to degrade gracefully or surface the problem.
type ErrorKind int

const (
	// Unauthorized means the caller does not hold the entitlement required
	// for the requested analysis.
	Unauthorized ErrorKind = iota
	// MissingPrerequisite means a required row (e.g. a DNA profile for one
	// side of a compatibility analysis) does not exist yet.
	MissingPrerequisite
	// ParseFailure means the model responded but its content was not the
	// expected JSON. The raw response is retained for inspection.
	ParseFailure
	// ServiceUnavailable means the completion call itself failed (network,
	// non-2xx, timeout).
	ServiceUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case MissingPrerequisite:
		return "missing_prerequisite"
	case ParseFailure:
		return "parse_failure"
	case ServiceUnavailable:
		return "service_unavailable"
	default:
		return "unknown"
	}
}

// AnalysisError is the typed error for every analysis operation.
type AnalysisError struct {
	Kind ErrorKind
	Raw  string // raw model output, set for ParseFailure
	Err  error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("analysis %s", e.Kind)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Err: err}
}

func NewParseError(raw string, err error) *AnalysisError {
	return &AnalysisError{Kind: ParseFailure, Raw: raw, Err: err}
}

// IsKind reports whether err is an AnalysisError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ae, ok := err.(*AnalysisError)
	return ok && ae.Kind == kind
}
