package verify

import "fmt"

type FailureKind int

const (
	// Assertion means a verified property did not match the reference value.
	Assertion FailureKind = iota
	// Unsupported means the candidate does not implement the requested
	// object. Runners record it as skipped, not failed.
	Unsupported
	// Conversion means a unit conversion between incommensurable units.
	Conversion
)

func (k FailureKind) String() string {
	switch k {
	case Assertion:
		return "assertion"
	case Unsupported:
		return "unsupported"
	case Conversion:
		return "conversion"
	default:
		return "unknown"
	}
}

// Failure is a single verification failure, qualified by the accessor
// whose value diverged.
type Failure struct {
	Kind    FailureKind
	Field   string
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	if f.Field != "" {
		return f.Field + ": " + f.Message
	}

	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

func failf(field, format string, args ...any) *Failure {
	return &Failure{Kind: Assertion, Field: field, Message: fmt.Sprintf(format, args...)}
}
