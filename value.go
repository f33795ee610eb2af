package tcalc

import (
	"fmt"
	"strconv"
)

// ValueType represents the type of a value.
type ValueType int8

// Predefined value types
const (
	Undefined ValueType = iota
	NumericType
	TextType
)

func (vt ValueType) String() string {
	switch vt {
	case NumericType:
		return "numeric"
	case TextType:
		return "text"
	}
	return "<undefined>"
}

// --- Value -----------------------------------------------------------------

// Value is an interface for all values which tcalc can handle. The language
// knows exactly two kinds: signed 32-bit integers and uninterpreted text.
type Value interface {
	Self() ValueBase // helper indirection, see type ValueBase
	Type() ValueType // type of the value
}

// ValueBase is a helper struct for operations on values.
type ValueBase struct {
	V Value
}

// String represents a value the way the session dump prints it: numerics
// as bare numbers, texts quoted.
func (b ValueBase) String() string {
	if b.IsNumeric() {
		return strconv.FormatInt(int64(b.AsNumeric()), 10)
	} else if b.IsText() {
		return `"` + string(b.AsText()) + `"`
	}
	return fmt.Sprintf("%v", b.V)
}

// IsNumeric is a predicate: is it a Numeric?
func (b ValueBase) IsNumeric() bool {
	_, ok := b.V.(Numeric)
	return ok
}

// IsText is a predicate: is it a Text?
func (b ValueBase) IsText() bool {
	_, ok := b.V.(Text)
	return ok
}

// Type returns the value type of a value.
func (b ValueBase) Type() ValueType {
	if b.V == nil {
		return Undefined
	}
	return b.V.Type()
}

// AsNumeric returns a value as a Numeric, or 0 for non-numeric values.
func (b ValueBase) AsNumeric() Numeric {
	if n, ok := b.V.(Numeric); ok {
		return n
	}
	tracer().Errorf("value is not of type numeric: %v", b.V)
	return Numeric(0)
}

// AsText returns a value as a Text, or an empty Text for non-text values.
func (b ValueBase) AsText() Text {
	if t, ok := b.V.(Text); ok {
		return t
	}
	tracer().Errorf("value is not of type text: %v", b.V)
	return Text("")
}

// --- Numeric ---------------------------------------------------------------

// Numeric is a signed 32-bit integer value.
type Numeric int32

// Self returns this numeric, wrapped into a ValueBase struct.
func (n Numeric) Self() ValueBase {
	return ValueBase{n}
}

// Type returns NumericType.
func (n Numeric) Type() ValueType {
	return NumericType
}

// --- Text ------------------------------------------------------------------

// Text is an uninterpreted string value. Text values live in the variable
// table but cannot take part in arithmetic.
type Text string

// Self returns this text, wrapped into a ValueBase struct.
func (t Text) Self() ValueBase {
	return ValueBase{t}
}

// Type returns TextType.
func (t Text) Type() ValueType {
	return TextType
}
