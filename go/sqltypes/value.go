/*
Copyright 2026 The ShardSQL Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sqltypes implements the typed SQL value used throughout the
// planner, its total order under a CompareMode, and the coercion rules
// between types.
package sqltypes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"

	"shardsql.io/shardsql/go/ss/sserrors"
)

// Reference layouts for the temporal types. The canonical encodings sort
// lexically within a type.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DatetimeLayout = "2006-01-02 15:04:05"
)

// Value is a typed SQL scalar. The zero value is the NULL value.
//
// A Value holds the canonical text encoding of its scalar; the struct is
// closed, so no foreign representation of a type can enter the engine.
type Value struct {
	typ Type
	val []byte
}

// NULL is the SQL NULL value.
var NULL = Value{}

// MakeTrusted builds a Value from its canonical encoding without
// validation. Use only with bytes produced by this package.
func MakeTrusted(typ Type, val []byte) Value {
	if typ == Null {
		return NULL
	}
	return Value{typ: typ, val: val}
}

// NewBoolean builds a BOOLEAN value.
func NewBoolean(b bool) Value {
	if b {
		return Value{typ: Boolean, val: []byte("true")}
	}
	return Value{typ: Boolean, val: []byte("false")}
}

// NewInt8 builds an INT8 value.
func NewInt8(v int8) Value {
	return Value{typ: Int8, val: strconv.AppendInt(nil, int64(v), 10)}
}

// NewInt16 builds an INT16 value.
func NewInt16(v int16) Value {
	return Value{typ: Int16, val: strconv.AppendInt(nil, int64(v), 10)}
}

// NewInt32 builds an INT32 value.
func NewInt32(v int32) Value {
	return Value{typ: Int32, val: strconv.AppendInt(nil, int64(v), 10)}
}

// NewInt64 builds an INT64 value.
func NewInt64(v int64) Value {
	return Value{typ: Int64, val: strconv.AppendInt(nil, v, 10)}
}

// NewUint64 builds a UINT64 value.
func NewUint64(v uint64) Value {
	return Value{typ: Uint64, val: strconv.AppendUint(nil, v, 10)}
}

// NewFloat64 builds a FLOAT64 value.
func NewFloat64(v float64) Value {
	return Value{typ: Float64, val: strconv.AppendFloat(nil, v, 'g', -1, 64)}
}

// NewDecimal builds a DECIMAL value from its text form.
func NewDecimal(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return NULL, sserrors.Errorf(sserrors.CodeInvalidArgument, "invalid decimal: %q", s)
	}
	return Value{typ: Decimal, val: []byte(d.Text('f'))}, nil
}

// TestDecimal builds a DECIMAL value and panics on invalid input. For use
// in tests and static literals.
func TestDecimal(s string) Value {
	v, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return v
}

// NewVarChar builds a VARCHAR value.
func NewVarChar(s string) Value {
	return Value{typ: VarChar, val: []byte(s)}
}

// NewVarBinary builds a VARBINARY value.
func NewVarBinary(b []byte) Value {
	return Value{typ: VarBinary, val: b}
}

func newTemporal(typ Type, layout, s string) (Value, error) {
	if _, err := time.Parse(layout, s); err != nil {
		return NULL, sserrors.NewErrorf(sserrors.CodeInvalidArgument, sserrors.WrongValue,
			"invalid %v literal: %q", typ, s)
	}
	return Value{typ: typ, val: []byte(s)}, nil
}

// NewDate builds a DATE value from its "YYYY-MM-DD" form.
func NewDate(s string) (Value, error) {
	return newTemporal(Date, DateLayout, s)
}

// NewTime builds a TIME value from its "HH:MM:SS" form.
func NewTime(s string) (Value, error) {
	return newTemporal(Time, TimeLayout, s)
}

// NewDatetime builds a DATETIME value from its "YYYY-MM-DD HH:MM:SS" form.
func NewDatetime(s string) (Value, error) {
	return newTemporal(Datetime, DatetimeLayout, s)
}

// NewTimestamp builds a TIMESTAMP value from its "YYYY-MM-DD HH:MM:SS" form.
func NewTimestamp(s string) (Value, error) {
	return newTemporal(Timestamp, DatetimeLayout, s)
}

// Type returns the type of the value.
func (v Value) Type() Type {
	return v.typ
}

// Raw returns the canonical encoding. Callers must not modify it.
func (v Value) Raw() []byte {
	return v.val
}

// IsNull returns true if this is the NULL value.
func (v Value) IsNull() bool {
	return v.typ == Null
}

// IsSigned returns true for signed integer values.
func (v Value) IsSigned() bool { return IsSigned(v.typ) }

// IsUnsigned returns true for unsigned integer values.
func (v Value) IsUnsigned() bool { return IsUnsigned(v.typ) }

// IsIntegral returns true for integer values.
func (v Value) IsIntegral() bool { return IsIntegral(v.typ) }

// IsNumber returns true for numeric values.
func (v Value) IsNumber() bool { return IsNumber(v.typ) }

// IsText returns true for VARCHAR values.
func (v Value) IsText() bool { return IsText(v.typ) }

// IsBinary returns true for VARBINARY values.
func (v Value) IsBinary() bool { return IsBinary(v.typ) }

// IsTemporal returns true for date and time values.
func (v Value) IsTemporal() bool { return IsTemporal(v.typ) }

// ToString returns the canonical encoding as a string. NULL yields "".
func (v Value) ToString() string {
	return string(v.val)
}

// ToBool decodes a BOOLEAN value.
func (v Value) ToBool() (bool, error) {
	if v.typ != Boolean {
		return false, sserrors.Errorf(sserrors.CodeInvalidArgument, "%v is not a boolean", v)
	}
	return string(v.val) == "true", nil
}

// ToInt64 decodes an integral value.
func (v Value) ToInt64() (int64, error) {
	if !v.IsIntegral() {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%v is not an integer", v)
	}
	i, err := strconv.ParseInt(string(v.val), 10, 64)
	if err != nil {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
	}
	return i, nil
}

// ToUint64 decodes an unsigned value.
func (v Value) ToUint64() (uint64, error) {
	if !v.IsIntegral() {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%v is not an integer", v)
	}
	u, err := strconv.ParseUint(string(v.val), 10, 64)
	if err != nil {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
	}
	return u, nil
}

// ToFloat64 decodes any numeric value to a float.
func (v Value) ToFloat64() (float64, error) {
	if !v.IsNumber() {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%v is not a number", v)
	}
	f, err := strconv.ParseFloat(string(v.val), 64)
	if err != nil {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
	}
	return f, nil
}

// ToDecimal decodes any numeric value to an arbitrary-precision decimal.
func (v Value) ToDecimal() (*apd.Decimal, error) {
	if !v.IsNumber() {
		return nil, sserrors.Errorf(sserrors.CodeInvalidArgument, "%v is not a number", v)
	}
	d, _, err := apd.NewFromString(string(v.val))
	if err != nil {
		return nil, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
	}
	return d, nil
}

// String formats the value for debugging.
func (v Value) String() string {
	if v.typ == Null {
		return "NULL"
	}
	return fmt.Sprintf("%v(%s)", v.typ, v.val)
}
