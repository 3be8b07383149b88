// Package fits implements the metadata normalizer that turns a FITS file
// into a JSON-serializable report.
package fits

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind discriminates the scalar variants a header value can hold.
type Kind uint8

const (
	// KindNull is an absent or undefined header value.
	KindNull Kind = iota

	// KindString is a FITS character string value.
	KindString

	// KindInteger is a FITS integer value.
	KindInteger

	// KindFloat is a FITS floating-point value.
	KindFloat

	// KindBoolean is a FITS logical value.
	KindBoolean

	// KindOther is any non-scalar value, carried as its string rendering.
	KindOther
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Value is a tagged variant over the scalar types a normalized header entry
// may hold. Scalars pass through unchanged; anything else is stored as its
// string rendering under KindOther.
type Value struct {
	kind Kind
	str  string
	num  int64
	real float64
	flag bool
}

// NullValue returns the null value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// StringValue returns a string-kinded value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue returns an integer-kinded value.
func IntValue(i int64) Value {
	return Value{kind: KindInteger, num: i}
}

// FloatValue returns a float-kinded value.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

// BoolValue returns a boolean-kinded value.
func BoolValue(b bool) Value {
	return Value{kind: KindBoolean, flag: b}
}

// OtherValue returns a value holding the string rendering of a non-scalar.
func OtherValue(s string) Value {
	return Value{kind: KindOther, str: s}
}

// ValueOf normalizes a raw header value as read by the FITS library.
// Strings, integers, floats, booleans and nil pass through; every other
// type collapses to its fmt rendering.
func ValueOf(v interface{}) Value {
	switch v := v.(type) {
	case nil:
		return NullValue()
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case int:
		return IntValue(int64(v))
	case int8:
		return IntValue(int64(v))
	case int16:
		return IntValue(int64(v))
	case int32:
		return IntValue(int64(v))
	case int64:
		return IntValue(v)
	case uint:
		return uintValue(uint64(v))
	case uint8:
		return IntValue(int64(v))
	case uint16:
		return IntValue(int64(v))
	case uint32:
		return IntValue(int64(v))
	case uint64:
		return uintValue(v)
	case float32:
		return FloatValue(float64(v))
	case float64:
		return FloatValue(v)
	default:
		return OtherValue(fmt.Sprintf("%v", v))
	}
}

// uintValue converts an unsigned integer, falling back to the string form
// when the value does not fit in an int64.
func uintValue(v uint64) Value {
	if v > math.MaxInt64 {
		return OtherValue(strconv.FormatUint(v, 10))
	}
	return IntValue(int64(v))
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Native returns the value as a plain Go value, suitable for display.
// KindOther returns its string rendering; KindNull returns nil.
func (v Value) Native() interface{} {
	switch v.kind {
	case KindString, KindOther:
		return v.str
	case KindInteger:
		return v.num
	case KindFloat:
		return v.real
	case KindBoolean:
		return v.flag
	default:
		return nil
	}
}

// Display returns a human-readable rendering of the value.
func (v Value) Display() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString, KindOther:
		return v.str
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}

// MarshalJSON renders the value per the report contract: scalars verbatim,
// null for absent values, and the string form for everything else.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString, KindOther:
		return json.Marshal(v.str)
	case KindInteger:
		return strconv.AppendInt(nil, v.num, 10), nil
	case KindFloat:
		return json.Marshal(v.real)
	case KindBoolean:
		return strconv.AppendBool(nil, v.flag), nil
	default:
		return nil, fmt.Errorf("fits: cannot marshal value of kind %d", v.kind)
	}
}
