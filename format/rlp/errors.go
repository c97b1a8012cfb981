package rlp

import (
	"github.com/eluv-io/errors-go"
)

// Error reasons used in the "reason" field of errors returned by this
// package. Framing violations and non-canonical encodings carry
// reasonMalformed, a complete value followed by extra input carries
// reasonTrailing, and value kinds without a wire representation carry
// reasonUnsupported.
const (
	reasonMalformed   = "malformed data"
	reasonTrailing    = "trailing bytes"
	reasonUnsupported = "type not supported"
	reasonExhausted   = "exhausted"
)

// IsMalformed reports whether err was caused by invalid input: a framing
// violation, a non-canonical encoding, a structure mismatch during
// unmarshaling, or trailing bytes after a complete value.
func IsMalformed(err error) bool {
	return errors.IsKind(errors.K.Invalid, err)
}

// IsTrailingBytes reports whether err was caused by extra input following a
// complete top-level value.
func IsTrailingBytes(err error) bool {
	reason, _ := errors.GetField(err, "reason")
	return reason == reasonTrailing
}

// IsTypeNotSupported reports whether err was caused by a value kind that has
// no wire representation (booleans, floats, maps, union discriminants).
func IsTypeNotSupported(err error) bool {
	return errors.IsKind(errors.K.NotImplemented, err)
}

// IsExhausted reports whether err was caused by reading past the end of a
// compound's values.
func IsExhausted(err error) bool {
	reason, _ := errors.GetField(err, "reason")
	return reason == reasonExhausted
}
