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

// Type is the SQL type of a Value.
type Type int16

const (
	Null Type = iota
	Boolean
	Int8
	Int16
	Int32
	Int64
	Uint64
	Decimal
	Float64
	VarChar
	VarBinary
	Date
	Time
	Datetime
	Timestamp
)

func (t Type) String() string {
	switch t {
	case Null:
		return "NULL"
	case Boolean:
		return "BOOLEAN"
	case Int8:
		return "INT8"
	case Int16:
		return "INT16"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Uint64:
		return "UINT64"
	case Decimal:
		return "DECIMAL"
	case Float64:
		return "FLOAT64"
	case VarChar:
		return "VARCHAR"
	case VarBinary:
		return "VARBINARY"
	case Date:
		return "DATE"
	case Time:
		return "TIME"
	case Datetime:
		return "DATETIME"
	case Timestamp:
		return "TIMESTAMP"
	}
	return "UNKNOWN"
}

// IsNull returns true for the NULL type.
func IsNull(t Type) bool {
	return t == Null
}

// IsSigned returns true for signed integer types.
func IsSigned(t Type) bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// IsUnsigned returns true for unsigned integer types.
func IsUnsigned(t Type) bool {
	return t == Uint64
}

// IsIntegral returns true for all integer types.
func IsIntegral(t Type) bool {
	return IsSigned(t) || IsUnsigned(t)
}

// IsFloat returns true for floating point types.
func IsFloat(t Type) bool {
	return t == Float64
}

// IsDecimal returns true for the exact decimal type.
func IsDecimal(t Type) bool {
	return t == Decimal
}

// IsNumber returns true for every numeric type.
func IsNumber(t Type) bool {
	return IsIntegral(t) || IsFloat(t) || IsDecimal(t)
}

// IsText returns true for collated character string types.
func IsText(t Type) bool {
	return t == VarChar
}

// IsBinary returns true for raw byte string types.
func IsBinary(t Type) bool {
	return t == VarBinary
}

// IsTextOrBinary returns true for string types of either kind.
func IsTextOrBinary(t Type) bool {
	return IsText(t) || IsBinary(t)
}

// IsTemporal returns true for date and time types.
func IsTemporal(t Type) bool {
	switch t {
	case Date, Time, Datetime, Timestamp:
		return true
	}
	return false
}

func integralRange(t Type) (min, max int64) {
	switch t {
	case Int8:
		return -128, 127
	case Int16:
		return -32768, 32767
	case Int32:
		return -2147483648, 2147483647
	default:
		return -9223372036854775808, 9223372036854775807
	}
}
