package adf

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes decode failures.
type ErrorKind string

const (
	MalformedInput  ErrorKind = "malformed input"
	UnknownVariant  ErrorKind = "unknown variant"
	MissingField    ErrorKind = "missing field"
	TypeMismatch    ErrorKind = "type mismatch"
	UnexpectedField ErrorKind = "unexpected field"
)

// Sentinels for errors.Is. They match any *DecodeError of the same kind.
var (
	ErrMalformedInput  = &DecodeError{Kind: MalformedInput}
	ErrUnknownVariant  = &DecodeError{Kind: UnknownVariant}
	ErrMissingField    = &DecodeError{Kind: MissingField}
	ErrTypeMismatch    = &DecodeError{Kind: TypeMismatch}
	ErrUnexpectedField = &DecodeError{Kind: UnexpectedField}
)

// DecodeError reports why and where a value failed to decode.
type DecodeError struct {
	Kind ErrorKind
	// Path locates the failure from the root, e.g. doc, content[0], paragraph, attrs, localId.
	Path []string
	// Variant is the discriminator of the node or mark being decoded, if known.
	Variant string
	// Field is the offending key.
	Field string
	// Expected describes the shape a TypeMismatch wanted.
	Expected string
	// Tag is the unrecognized discriminator of an UnknownVariant.
	Tag string
	// Err is the underlying parser error of a MalformedInput.
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	var msg string
	switch e.Kind {
	case MalformedInput:
		msg = "malformed input"
		if e.Err != nil {
			msg = fmt.Sprintf("malformed input: %v", e.Err)
		}
	case UnknownVariant:
		if e.Tag == "" {
			msg = "missing or non-string \"type\" discriminator"
		} else {
			msg = fmt.Sprintf("unknown variant %q", e.Tag)
		}
	case MissingField:
		msg = fmt.Sprintf("%s: missing field %q", e.Variant, e.Field)
	case TypeMismatch:
		if e.Field == "" {
			msg = fmt.Sprintf("expected %s", e.Expected)
		} else {
			msg = fmt.Sprintf("%s: field %q must be %s", e.Variant, e.Field, e.Expected)
		}
	case UnexpectedField:
		msg = fmt.Sprintf("%s: unexpected field %q", e.Variant, e.Field)
	default:
		msg = string(e.Kind)
	}
	if len(e.Path) > 0 {
		return fmt.Sprintf("adf: %s at %s", msg, e.PathString())
	}
	return "adf: " + msg
}

// PathString renders Path with dots, e.g. "doc.content[0].paragraph".
func (e *DecodeError) PathString() string {
	return strings.Join(e.Path, ".")
}

// Unwrap returns the parser error behind a MalformedInput.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *DecodeError of the same kind.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
