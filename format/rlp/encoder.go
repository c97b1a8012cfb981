package rlp

import (
	"fmt"

	"github.com/eluv-io/errors-go"
)

// Encoder linearizes a depth-first sequence of scalar writes and compound
// begin/end calls into a canonical encoding. It keeps one partial buffer per
// open compound on an explicit stack, so nesting is bounded only by memory,
// not by the call stack. An Encoder is single-use: drive it through the
// Writer methods, then call Bytes.
type Encoder struct {
	stack [][]byte
}

var _ Writer = (*Encoder)(nil)

// NewEncoder returns an Encoder with an empty top-level buffer.
func NewEncoder() *Encoder {
	return &Encoder{stack: make([][]byte, 1, 8)}
}

// WriteScalar appends the canonical scalar encoding of b to the innermost
// open compound. WriteScalar(nil) writes the empty scalar 0x80.
func (e *Encoder) WriteScalar(b []byte) {
	top := len(e.stack) - 1
	e.stack[top] = appendScalar(e.stack[top], b)
}

// WriteRaw appends b verbatim. b must already be a complete encoding, e.g.
// the raw span captured by a Proxy.
func (e *Encoder) WriteRaw(b []byte) {
	top := len(e.stack) - 1
	e.stack[top] = append(e.stack[top], b...)
}

// BeginCompound opens a nested compound by pushing a fresh buffer.
func (e *Encoder) BeginCompound() {
	e.stack = append(e.stack, nil)
}

// EndCompound closes the innermost open compound: its buffer is popped,
// framed according to its length, and appended to the enclosing buffer.
func (e *Encoder) EndCompound() error {
	if len(e.stack) < 2 {
		return errors.E("rlp.EndCompound", errors.K.Invalid, "reason", "no open compound")
	}
	payload := e.stack[len(e.stack)-1]
	e.stack[len(e.stack)-1] = nil
	e.stack = e.stack[:len(e.stack)-1]
	top := len(e.stack) - 1
	e.stack[top] = appendCompoundHead(e.stack[top], len(payload))
	e.stack[top] = append(e.stack[top], payload...)
	return nil
}

// Bytes returns the completed encoding. It fails if a compound is still
// open.
func (e *Encoder) Bytes() ([]byte, error) {
	if len(e.stack) != 1 {
		return nil, errors.E("rlp.Encoder.Bytes", errors.K.Invalid,
			"reason", "unclosed compound", "open", len(e.stack)-1)
	}
	return e.stack[0], nil
}

// Encode returns the canonical encoding of the given value. The value tree
// is walked iteratively, so nesting depth is bounded only by memory.
func Encode(v Value) ([]byte, error) {
	e := NewEncoder()
	type item struct {
		val Value
		end bool
	}
	work := []item{{val: v}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		if it.end {
			_ = e.EndCompound()
			continue
		}
		switch val := it.val.(type) {
		case Scalar:
			e.WriteScalar(val)
		case Compound:
			e.BeginCompound()
			work = append(work, item{end: true})
			for i := len(val) - 1; i >= 0; i-- {
				work = append(work, item{val: val[i]})
			}
		case nil:
			e.WriteScalar(nil)
		default:
			return nil, errors.E("rlp.Encode", errors.K.NotImplemented,
				"reason", reasonUnsupported, "type", fmt.Sprintf("%T", it.val))
		}
	}
	return e.Bytes()
}
