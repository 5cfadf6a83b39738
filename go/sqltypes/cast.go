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

package sqltypes

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"shardsql.io/shardsql/go/ss/sserrors"
)

// Cast converts a Value to the target type.
//
// Unsupported conversions fail with the InvalidClass2 state; values that
// fit the conversion but not the target range fail with DataOutOfRange.
func Cast(v Value, typ Type) (Value, error) {
	if v.typ == typ || v.IsNull() {
		return v, nil
	}
	switch typ {
	case Null:
		return NULL, invalidClass(v, typ)
	case Boolean:
		return castToBoolean(v)
	case Int8, Int16, Int32, Int64:
		return castToSigned(v, typ)
	case Uint64:
		return castToUnsigned(v)
	case Decimal:
		return castToDecimal(v)
	case Float64:
		return castToFloat(v)
	case VarChar:
		return NewVarChar(v.ToString()), nil
	case VarBinary:
		if v.IsText() {
			return NewVarBinary(v.val), nil
		}
		return NULL, invalidClass(v, typ)
	case Date, Time, Datetime, Timestamp:
		return castToTemporal(v, typ)
	}
	return NULL, invalidClass(v, typ)
}

func invalidClass(v Value, typ Type) error {
	return sserrors.NewErrorf(sserrors.CodeInvalidArgument, sserrors.InvalidClass2,
		"cannot convert %v to %v", v, typ)
}

func outOfRange(v Value, typ Type) error {
	return sserrors.NewErrorf(sserrors.CodeInvalidArgument, sserrors.DataOutOfRange,
		"value %v out of range for %v", v, typ)
}

func wrongValue(v Value, typ Type) error {
	return sserrors.NewErrorf(sserrors.CodeInvalidArgument, sserrors.WrongValue,
		"cannot parse %v as %v", v, typ)
}

func castToBoolean(v Value) (Value, error) {
	switch {
	case v.IsIntegral():
		i, err := v.ToInt64()
		if err != nil {
			return NULL, err
		}
		return NewBoolean(i != 0), nil
	case v.IsNumber():
		f, err := v.ToFloat64()
		if err != nil {
			return NULL, err
		}
		return NewBoolean(f != 0), nil
	case v.IsText():
		switch strings.ToLower(v.ToString()) {
		case "true", "t", "1":
			return NewBoolean(true), nil
		case "false", "f", "0":
			return NewBoolean(false), nil
		}
		return NULL, wrongValue(v, Boolean)
	}
	return NULL, invalidClass(v, Boolean)
}

// integralOf truncates a numeric value toward zero.
func integralOf(v Value) (int64, error) {
	d, err := v.ToDecimal()
	if err != nil {
		return 0, err
	}
	ctx := apd.BaseContext
	ctx.Rounding = apd.RoundDown
	var r apd.Decimal
	if _, err := ctx.RoundToIntegralValue(&r, d); err != nil {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
	}
	i, err := r.Int64()
	if err != nil {
		return 0, sserrors.NewErrorf(sserrors.CodeInvalidArgument, sserrors.DataOutOfRange, "%s", err)
	}
	return i, nil
}

func castToSigned(v Value, typ Type) (Value, error) {
	var i int64
	switch {
	case v.typ == Boolean:
		b, err := v.ToBool()
		if err != nil {
			return NULL, err
		}
		if b {
			i = 1
		}
	case v.IsNumber():
		var err error
		i, err = integralOf(v)
		if err != nil {
			if sserrors.ErrState(err) == sserrors.DataOutOfRange {
				return NULL, outOfRange(v, typ)
			}
			return NULL, err
		}
	case v.IsText():
		var err error
		i, err = strconv.ParseInt(v.ToString(), 10, 64)
		if err != nil {
			return NULL, wrongValue(v, typ)
		}
	default:
		return NULL, invalidClass(v, typ)
	}
	if lo, hi := integralRange(typ); i < lo || i > hi {
		return NULL, outOfRange(v, typ)
	}
	return MakeTrusted(typ, strconv.AppendInt(nil, i, 10)), nil
}

func castToUnsigned(v Value) (Value, error) {
	switch {
	case v.typ == Boolean:
		b, err := v.ToBool()
		if err != nil {
			return NULL, err
		}
		var u uint64
		if b {
			u = 1
		}
		return NewUint64(u), nil
	case v.IsNumber():
		d, err := v.ToDecimal()
		if err != nil {
			return NULL, err
		}
		if d.Negative && !d.IsZero() {
			return NULL, outOfRange(v, Uint64)
		}
		u, err := strconv.ParseUint(truncated(d), 10, 64)
		if err != nil {
			return NULL, outOfRange(v, Uint64)
		}
		return NewUint64(u), nil
	case v.IsText():
		u, err := strconv.ParseUint(v.ToString(), 10, 64)
		if err != nil {
			return NULL, wrongValue(v, Uint64)
		}
		return NewUint64(u), nil
	}
	return NULL, invalidClass(v, Uint64)
}

func truncated(d *apd.Decimal) string {
	ctx := apd.BaseContext
	ctx.Rounding = apd.RoundDown
	var r apd.Decimal
	if _, err := ctx.RoundToIntegralValue(&r, d); err != nil {
		return d.Text('f')
	}
	return r.Text('f')
}

func castToDecimal(v Value) (Value, error) {
	switch {
	case v.typ == Boolean:
		b, err := v.ToBool()
		if err != nil {
			return NULL, err
		}
		if b {
			return TestDecimal("1"), nil
		}
		return TestDecimal("0"), nil
	case v.IsNumber(), v.IsText():
		d, _, err := apd.NewFromString(v.ToString())
		if err != nil {
			if v.IsText() {
				return NULL, wrongValue(v, Decimal)
			}
			return NULL, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
		}
		return MakeTrusted(Decimal, []byte(d.Text('f'))), nil
	}
	return NULL, invalidClass(v, Decimal)
}

func castToFloat(v Value) (Value, error) {
	switch {
	case v.typ == Boolean:
		b, err := v.ToBool()
		if err != nil {
			return NULL, err
		}
		if b {
			return NewFloat64(1), nil
		}
		return NewFloat64(0), nil
	case v.IsNumber(), v.IsText():
		f, err := strconv.ParseFloat(v.ToString(), 64)
		if err != nil {
			return NULL, wrongValue(v, Float64)
		}
		return NewFloat64(f), nil
	}
	return NULL, invalidClass(v, Float64)
}

func castToTemporal(v Value, typ Type) (Value, error) {
	s := v.ToString()
	switch typ {
	case Date:
		switch {
		case v.typ == Datetime || v.typ == Timestamp:
			return MakeTrusted(Date, []byte(s[:len(DateLayout)])), nil
		case v.IsText():
			return NewDate(s)
		}
	case Time:
		switch {
		case v.typ == Datetime || v.typ == Timestamp:
			return MakeTrusted(Time, []byte(s[len(DateLayout)+1:])), nil
		case v.IsText():
			return NewTime(s)
		}
	case Datetime, Timestamp:
		switch {
		case v.typ == Datetime || v.typ == Timestamp:
			return MakeTrusted(typ, v.val), nil
		case v.typ == Date:
			return MakeTrusted(typ, []byte(s+" 00:00:00")), nil
		case v.IsText():
			t, err := newTemporal(typ, DatetimeLayout, s)
			if err == nil {
				return t, nil
			}
			if d, derr := NewDate(s); derr == nil {
				return MakeTrusted(typ, []byte(d.ToString()+" 00:00:00")), nil
			}
			return NULL, err
		}
	}
	return NULL, invalidClass(v, typ)
}
