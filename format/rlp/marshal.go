package rlp

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/eluv-io/errors-go"
)

// Marshaler is the interface implemented by types that produce their own
// encoding through the Writer surface, e.g. to encode one variant of a
// tagged union.
type Marshaler interface {
	EncodeRLP(w Writer) error
}

// Unmarshaler is the interface implemented by types that consume their own
// encoding, e.g. to resolve a tagged union by capturing a Proxy from the
// reader and branching on its content.
type Unmarshaler interface {
	DecodeRLP(r *Reader) error
}

var (
	bigIntType      = reflect.TypeOf(big.Int{})
	proxyType       = reflect.TypeOf(Proxy{})
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

// Marshal maps a native Go value onto the scalar/compound model and returns
// its canonical encoding:
//   - unsigned integers: minimal big-endian scalar, zero → empty scalar
//   - string, []byte, [N]byte: scalar
//   - big.Int: minimal big-endian scalar (must not be negative)
//   - struct: compound of its exported fields in declaration order
//   - slice, array of non-byte elements: compound of the elements
//   - pointers: transparent; a nil pointer encodes as the empty scalar
//   - Proxy: its captured raw encoding, verbatim
//
// Defined types are transparent wrappers: a value of `type Nonce uint64`
// encodes exactly like the uint64 it wraps. Struct fields tagged `rlp:"-"`
// are skipped. Booleans, floats, maps, signed integers and other kinds
// without a wire representation fail with a type-not-supported error.
func Marshal(v interface{}) ([]byte, error) {
	e := NewEncoder()
	if err := marshalValue(e, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return e.Bytes()
}

func marshalValue(e *Encoder, rv reflect.Value) error {
	if !rv.IsValid() {
		e.WriteScalar(nil)
		return nil
	}
	if k := rv.Kind(); k == reflect.Ptr || k == reflect.Interface {
		if rv.IsNil() {
			e.WriteScalar(nil)
			return nil
		}
		return marshalValue(e, rv.Elem())
	}
	switch rv.Type() {
	case bigIntType:
		x := rv.Interface().(big.Int)
		b, err := EncodeBig(&x)
		if err != nil {
			return err
		}
		e.WriteScalar(b)
		return nil
	case proxyType:
		p := rv.Interface().(Proxy)
		e.WriteRaw(p.Raw())
		return nil
	}
	if m, ok := asMarshaler(rv); ok {
		return m.EncodeRLP(e)
	}
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.WriteScalar(EncodeUint(rv.Uint()))
	case reflect.String:
		e.WriteScalar([]byte(rv.String()))
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			e.WriteScalar(rv.Bytes())
			return nil
		}
		return marshalElems(e, rv)
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			e.WriteScalar(b)
			return nil
		}
		return marshalElems(e, rv)
	case reflect.Struct:
		e.BeginCompound()
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			if f := rt.Field(i); f.PkgPath != "" || f.Tag.Get("rlp") == "-" {
				continue
			}
			if err := marshalValue(e, rv.Field(i)); err != nil {
				return err
			}
		}
		return e.EndCompound()
	default:
		return errors.NoTrace("rlp.Marshal", errors.K.NotImplemented,
			"reason", reasonUnsupported, "type", rv.Type().String())
	}
	return nil
}

func marshalElems(e *Encoder, rv reflect.Value) error {
	e.BeginCompound()
	for i := 0; i < rv.Len(); i++ {
		if err := marshalValue(e, rv.Index(i)); err != nil {
			return err
		}
	}
	return e.EndCompound()
}

func asMarshaler(rv reflect.Value) (Marshaler, bool) {
	if rv.Type().Implements(marshalerType) {
		return rv.Interface().(Marshaler), true
	}
	if rv.CanAddr() && reflect.PtrTo(rv.Type()).Implements(marshalerType) {
		return rv.Addr().Interface().(Marshaler), true
	}
	return nil, false
}

// Unmarshal decodes buf into the value pointed to by target, the inverse of
// Marshal. Decoding is strict: the structure of buf must match the target
// exactly, fixed-size byte arrays require the exact length, integer
// payloads must be minimal, and the full input must be consumed by the one
// top-level value.
//
// A target field of type Proxy captures the raw encoding of the value in
// its position without interpreting it; see Proxy. Interface targets fail
// with a type-not-supported error: the wire format carries no discriminant,
// so the concrete type cannot be inferred.
func Unmarshal(buf []byte, target interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.E("rlp.Unmarshal", errors.K.Invalid,
			"reason", "target must be a non-nil pointer", "type", fmt.Sprintf("%T", target))
	}
	tree, err := NewTree(buf)
	if err != nil {
		return err
	}
	return unmarshalValue(tree.Reader(), rv.Elem())
}

func unmarshalValue(r *Reader, rv reflect.Value) error {
	switch rv.Type() {
	case bigIntType:
		b, err := r.NextScalar()
		if err != nil {
			return err
		}
		x, err := DecodeBig(b)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(*x))
		return nil
	case proxyType:
		p, err := r.Proxy()
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(*p))
		return nil
	}
	if u, ok := asUnmarshaler(rv); ok {
		return u.DecodeRLP(r)
	}
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(r, rv.Elem())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b, err := r.NextScalar()
		if err != nil {
			return err
		}
		bits := rv.Type().Bits()
		if bits > 64 {
			bits = 64
		}
		x, err := DecodeUint(b, bits)
		if err != nil {
			return err
		}
		rv.SetUint(x)
	case reflect.String:
		b, err := r.NextScalar()
		if err != nil {
			return err
		}
		rv.SetString(string(b))
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b, err := r.NextScalar()
			if err != nil {
				return err
			}
			rv.SetBytes(append([]byte(nil), b...))
			return nil
		}
		sub, err := r.BeginCompoundRead()
		if err != nil {
			return err
		}
		rv.Set(reflect.MakeSlice(rv.Type(), 0, sub.Remaining()))
		for !sub.Done() {
			elem := reflect.New(rv.Type().Elem()).Elem()
			if err := unmarshalValue(sub, elem); err != nil {
				return err
			}
			rv.Set(reflect.Append(rv, elem))
		}
	case reflect.Array:
		return unmarshalArray(r, rv)
	case reflect.Struct:
		sub, err := r.BeginCompoundRead()
		if err != nil {
			return err
		}
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			if f := rt.Field(i); f.PkgPath != "" || f.Tag.Get("rlp") == "-" {
				continue
			}
			if err := unmarshalValue(sub, rv.Field(i)); err != nil {
				return err
			}
		}
		if !sub.Done() {
			return errors.E("rlp.Unmarshal", errors.K.Invalid, "reason", reasonMalformed,
				"cause", "extra elements in compound", "extra", sub.Remaining(), "type", rt.String())
		}
	case reflect.Interface:
		return errors.NoTrace("rlp.Unmarshal", errors.K.NotImplemented,
			"reason", reasonUnsupported, "type", rv.Type().String(),
			"cause", "no wire discriminant, use a Proxy to resolve the concrete type")
	default:
		return errors.NoTrace("rlp.Unmarshal", errors.K.NotImplemented,
			"reason", reasonUnsupported, "type", rv.Type().String())
	}
	return nil
}

func unmarshalArray(r *Reader, rv reflect.Value) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b, err := r.NextScalar()
		if err != nil {
			return err
		}
		if len(b) != rv.Len() {
			return errors.E("rlp.Unmarshal", errors.K.Invalid, "reason", reasonMalformed,
				"cause", "byte array length mismatch", "expected", rv.Len(), "actual", len(b))
		}
		reflect.Copy(rv, reflect.ValueOf(b))
		return nil
	}
	sub, err := r.BeginCompoundRead()
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := unmarshalValue(sub, rv.Index(i)); err != nil {
			return err
		}
	}
	if !sub.Done() {
		return errors.E("rlp.Unmarshal", errors.K.Invalid, "reason", reasonMalformed,
			"cause", "extra elements in compound", "extra", sub.Remaining(), "type", rv.Type().String())
	}
	return nil
}

func asUnmarshaler(rv reflect.Value) (Unmarshaler, bool) {
	if rv.Kind() == reflect.Ptr && rv.Type().Implements(unmarshalerType) {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return rv.Interface().(Unmarshaler), true
	}
	if rv.CanAddr() && reflect.PtrTo(rv.Type()).Implements(unmarshalerType) {
		return rv.Addr().Interface().(Unmarshaler), true
	}
	return nil, false
}
