package model

import (
	"math"
	"strconv"
)

// Value is one indicator sample. A Value that is not Valid marks an index
// where the indicator has insufficient history; it is never a real zero.
type Value struct {
	Float float64
	Valid bool
}

// Missing is the insufficient-data marker shared by every indicator.
var Missing = Value{}

// Some wraps a computed sample.
func Some(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Finite wraps f, or returns Missing when f is NaN or infinite.
func Finite(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing
	}
	return Some(f)
}

// Get returns the sample and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.Float, v.Valid
}

func (v Value) String() string {
	if !v.Valid {
		return "-"
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

// MarshalJSON encodes a missing value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return appendFloat(nil, v.Float), nil
}

// UnmarshalJSON accepts null or a number.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Missing
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*v = Some(f)
	return nil
}

// appendFloat writes f as a JSON number. NaN and Inf have no JSON form and
// are written as null, which the chart layer renders as a gap.
func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, f, 'f', -1, 64)
}
