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
	"bytes"
	"math"
	"time"

	"shardsql.io/shardsql/go/collations"
	"shardsql.io/shardsql/go/ss/sserrors"
)

// CompareMode is the value-ordering configuration of a database: which
// collation orders character strings, at which strength, and whether raw
// byte strings compare as unsigned or signed bytes. A CompareMode is
// immutable for the lifetime of the database that owns it.
type CompareMode struct {
	name           string
	strength       collations.Strength
	binaryUnsigned bool
	collation      collations.Collation
}

// NewCompareMode resolves the named collation at the given strength. The
// collation is looked up once; an unknown name is an error.
func NewCompareMode(name string, strength collations.Strength, binaryUnsigned bool) (*CompareMode, error) {
	coll := collations.Tailored(name, strength)
	if coll == nil {
		return nil, sserrors.Errorf(sserrors.CodeInvalidArgument, "unknown collation: %q", name)
	}
	return &CompareMode{
		name:           name,
		strength:       strength,
		binaryUnsigned: binaryUnsigned,
		collation:      coll,
	}, nil
}

// DefaultCompareMode orders strings bytewise and byte strings as unsigned
// bytes.
var DefaultCompareMode = &CompareMode{
	name:           "binary",
	strength:       collations.StrengthTertiary,
	binaryUnsigned: true,
	collation:      collations.Default(),
}

// Name returns the collation name.
func (m *CompareMode) Name() string { return m.name }

// Strength returns the collation strength.
func (m *CompareMode) Strength() collations.Strength { return m.strength }

// BinaryUnsigned reports whether VARBINARY compares as unsigned bytes.
func (m *CompareMode) BinaryUnsigned() bool { return m.binaryUnsigned }

// Collation returns the resolved collation.
func (m *CompareMode) Collation() collations.Collation { return m.collation }

// family ranks give the cross-family order. The order is stable and
// deterministic; it carries no SQL meaning.
const (
	familyNull = iota
	familyBoolean
	familyNumber
	familyTimeOfDay
	familyPointInTime
	familyText
	familyBinary
)

func typeFamily(t Type) int {
	switch {
	case t == Null:
		return familyNull
	case t == Boolean:
		return familyBoolean
	case IsNumber(t):
		return familyNumber
	case t == Time:
		return familyTimeOfDay
	case IsTemporal(t):
		return familyPointInTime
	case t == VarChar:
		return familyText
	default:
		return familyBinary
	}
}

// Compare returns the order of v1 and v2 under the given mode. The order
// is total: NULL sorts below every other value and equal to NULL; values
// of different type families order by a stable family rank.
func Compare(v1, v2 Value, mode *CompareMode) (int, error) {
	if mode == nil {
		mode = DefaultCompareMode
	}
	f1, f2 := typeFamily(v1.typ), typeFamily(v2.typ)
	if f1 != f2 {
		return compareInts(int64(f1), int64(f2)), nil
	}
	switch f1 {
	case familyNull:
		return 0, nil
	case familyBoolean:
		b1, err := v1.ToBool()
		if err != nil {
			return 0, err
		}
		b2, err := v2.ToBool()
		if err != nil {
			return 0, err
		}
		switch {
		case b1 == b2:
			return 0, nil
		case b2:
			return -1, nil
		default:
			return 1, nil
		}
	case familyNumber:
		return compareNumeric(v1, v2)
	case familyTimeOfDay:
		return bytes.Compare(v1.val, v2.val), nil
	case familyPointInTime:
		return comparePointInTime(v1, v2)
	case familyText:
		return mode.collation.Collate(v1.val, v2.val), nil
	default:
		if mode.binaryUnsigned {
			return bytes.Compare(v1.val, v2.val), nil
		}
		return compareSignedBytes(v1.val, v2.val), nil
	}
}

func compareInts(i1, i2 int64) int {
	switch {
	case i1 < i2:
		return -1
	case i1 > i2:
		return 1
	}
	return 0
}

func compareNumeric(v1, v2 Value) (int, error) {
	switch {
	case v1.IsSigned() && v2.IsSigned():
		i1, err := v1.ToInt64()
		if err != nil {
			return 0, err
		}
		i2, err := v2.ToInt64()
		if err != nil {
			return 0, err
		}
		return compareInts(i1, i2), nil

	case v1.IsUnsigned() && v2.IsUnsigned():
		u1, err := v1.ToUint64()
		if err != nil {
			return 0, err
		}
		u2, err := v2.ToUint64()
		if err != nil {
			return 0, err
		}
		switch {
		case u1 < u2:
			return -1, nil
		case u1 > u2:
			return 1, nil
		}
		return 0, nil

	case IsFloat(v1.typ) || IsFloat(v2.typ):
		f1, err := v1.ToFloat64()
		if err != nil {
			return 0, err
		}
		f2, err := v2.ToFloat64()
		if err != nil {
			return 0, err
		}
		return compareFloats(f1, f2), nil

	default:
		// Mixed integral signedness or decimals: exact compare.
		d1, err := v1.ToDecimal()
		if err != nil {
			return 0, err
		}
		d2, err := v2.ToDecimal()
		if err != nil {
			return 0, err
		}
		return d1.Cmp(d2), nil
	}
}

// compareFloats orders NaN below every other float so the order stays
// total.
func compareFloats(f1, f2 float64) int {
	switch {
	case math.IsNaN(f1) && math.IsNaN(f2):
		return 0
	case math.IsNaN(f1):
		return -1
	case math.IsNaN(f2):
		return 1
	case f1 < f2:
		return -1
	case f1 > f2:
		return 1
	}
	return 0
}

func temporalLayout(t Type) string {
	switch t {
	case Date:
		return DateLayout
	case Time:
		return TimeLayout
	default:
		return DatetimeLayout
	}
}

func comparePointInTime(v1, v2 Value) (int, error) {
	// Same type: canonical encodings sort lexically.
	if v1.typ == v2.typ {
		return bytes.Compare(v1.val, v2.val), nil
	}
	t1, err := time.Parse(temporalLayout(v1.typ), string(v1.val))
	if err != nil {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
	}
	t2, err := time.Parse(temporalLayout(v2.typ), string(v2.val))
	if err != nil {
		return 0, sserrors.Errorf(sserrors.CodeInvalidArgument, "%s", err)
	}
	return t1.Compare(t2), nil
}

func compareSignedBytes(b1, b2 []byte) int {
	n := min(len(b1), len(b2))
	for i := 0; i < n; i++ {
		if c := compareInts(int64(int8(b1[i])), int64(int8(b2[i]))); c != 0 {
			return c
		}
	}
	return compareInts(int64(len(b1)), int64(len(b2)))
}
