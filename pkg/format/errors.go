package format

import "fmt"

// ErrorCode classifies the ways a format call can fail.
type ErrorCode int

const (
	// ErrSyntax means the spec text inside a field does not match the
	// format mini-language grammar.
	ErrSyntax ErrorCode = iota
	// ErrInvalidCombination means the spec parsed but combines
	// directives that are mutually exclusive or unsupported for the
	// argument's kind.
	ErrInvalidCombination
	// ErrUnbalancedBrace means a field was opened but never closed, or
	// a bare close brace appeared in literal text.
	ErrUnbalancedBrace
	// ErrMixedArgumentReferencing means the template uses both
	// automatic and explicit argument indices.
	ErrMixedArgumentReferencing
	// ErrArgumentIndexOutOfRange means a field referenced an argument
	// beyond the supplied list.
	ErrArgumentIndexOutOfRange
	// ErrUnsupportedFeature means the field used syntax that is
	// recognized but intentionally not implemented, such as attribute
	// access or conversion flags.
	ErrUnsupportedFeature
	// ErrConversionFailure is reported for failures while stringifying
	// a generic argument. It is never returned from Format; the failure
	// is rendered inline instead.
	ErrConversionFailure
)

func (c ErrorCode) String() string {
	switch c {
	case ErrSyntax:
		return "SyntaxError"
	case ErrInvalidCombination:
		return "InvalidCombination"
	case ErrUnbalancedBrace:
		return "UnbalancedBrace"
	case ErrMixedArgumentReferencing:
		return "MixedArgumentReferencing"
	case ErrArgumentIndexOutOfRange:
		return "ArgumentIndexOutOfRange"
	case ErrUnsupportedFeature:
		return "UnsupportedFeature"
	case ErrConversionFailure:
		return "ConversionFailure"
	}
	return "Unknown"
}

// Error describes why a template could not be formatted. Field is the
// zero-based index of the substitution field, Offset the byte offset of
// its opening brace in the template, and Spec the raw spec text when
// the failure concerns one.
type Error struct {
	Code    ErrorCode
	Field   int
	Offset  int
	Spec    string
	Message string
}

func (e *Error) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("%s: %s in spec %q (field %d, offset %d)",
			e.Code, e.Message, e.Spec, e.Field, e.Offset)
	}
	return fmt.Sprintf("%s: %s (field %d, offset %d)",
		e.Code, e.Message, e.Field, e.Offset)
}

func specError(code ErrorCode, spec, format string, a ...interface{}) *Error {
	return &Error{Code: code, Spec: spec, Message: fmt.Sprintf(format, a...)}
}
