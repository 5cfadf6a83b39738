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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardsql.io/shardsql/go/collations"
)

func mustCompare(t *testing.T, v1, v2 Value, mode *CompareMode) int {
	t.Helper()
	c, err := Compare(v1, v2, mode)
	require.NoError(t, err)
	return c
}

func TestCompareNulls(t *testing.T) {
	assert.Equal(t, 0, mustCompare(t, NULL, NULL, nil))
	assert.Equal(t, -1, mustCompare(t, NULL, NewInt64(0), nil))
	assert.Equal(t, 1, mustCompare(t, NewVarChar(""), NULL, nil))
}

func TestCompareNumeric(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 Value
		out    int
	}{
		{"ints", NewInt64(1), NewInt64(2), -1},
		{"ints equal", NewInt64(7), NewInt64(7), 0},
		{"int widths", NewInt8(5), NewInt64(5), 0},
		{"uints", NewUint64(2), NewUint64(1), 1},
		{"signed vs unsigned", NewInt64(-1), NewUint64(18446744073709551615), -1},
		{"int vs decimal", NewInt64(5), TestDecimal("5.0"), 0},
		{"decimal order", TestDecimal("1.01"), TestDecimal("1.1"), -1},
		{"float vs int", NewFloat64(1.5), NewInt64(1), 1},
		{"float vs decimal", NewFloat64(2.5), TestDecimal("2.50"), 0},
		{"big decimals", TestDecimal("123456789012345678901234567890"), TestDecimal("123456789012345678901234567891"), -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, mustCompare(t, tc.v1, tc.v2, nil))
			assert.Equal(t, -tc.out, mustCompare(t, tc.v2, tc.v1, nil))
		})
	}
}

func TestCompareText(t *testing.T) {
	bin := DefaultCompareMode
	assert.Negative(t, mustCompare(t, NewVarChar("ABC"), NewVarChar("abc"), bin))

	ci, err := NewCompareMode("utf8mb4_general_ci", collations.StrengthSecondary, true)
	require.NoError(t, err)
	assert.Equal(t, 0, mustCompare(t, NewVarChar("ABC"), NewVarChar("abc"), ci))
	assert.Negative(t, mustCompare(t, NewVarChar("abc"), NewVarChar("ABD"), ci))
}

func TestCompareBinary(t *testing.T) {
	unsigned := DefaultCompareMode
	signed, err := NewCompareMode("binary", collations.StrengthTertiary, false)
	require.NoError(t, err)

	hi := NewVarBinary([]byte{0xff})
	lo := NewVarBinary([]byte{0x01})
	assert.Equal(t, 1, mustCompare(t, hi, lo, unsigned))
	// 0xff is -1 as a signed byte.
	assert.Equal(t, -1, mustCompare(t, hi, lo, signed))

	assert.Equal(t, -1, mustCompare(t, NewVarBinary([]byte("ab")), NewVarBinary([]byte("abc")), unsigned))
}

func TestCompareTemporal(t *testing.T) {
	d1, _ := NewDate("2020-01-01")
	d2, _ := NewDate("2020-01-02")
	assert.Equal(t, -1, mustCompare(t, d1, d2, nil))

	dt, _ := NewDatetime("2020-01-01 00:00:00")
	assert.Equal(t, 0, mustCompare(t, d1, dt, nil))

	ts, _ := NewTimestamp("2020-01-01 10:00:00")
	assert.Equal(t, -1, mustCompare(t, d1, ts, nil))

	t1, _ := NewTime("09:00:00")
	t2, _ := NewTime("10:00:00")
	assert.Equal(t, -1, mustCompare(t, t1, t2, nil))
}

// Cross-family order must be stable; the exact order carries no meaning.
func TestCompareCrossFamily(t *testing.T) {
	d, _ := NewDate("2020-01-01")
	ordered := []Value{
		NULL,
		NewBoolean(false),
		NewInt64(999999),
		d,
		NewVarChar("a"),
		NewVarBinary([]byte("a")),
	}
	for i := range ordered {
		for j := range ordered {
			got := mustCompare(t, ordered[i], ordered[j], nil)
			switch {
			case i < j:
				assert.Equal(t, -1, got, "%v vs %v", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "%v vs %v", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got)
			}
		}
	}
}

func TestCompareBoolean(t *testing.T) {
	assert.Equal(t, -1, mustCompare(t, NewBoolean(false), NewBoolean(true), nil))
	assert.Equal(t, 0, mustCompare(t, NewBoolean(true), NewBoolean(true), nil))
}

func TestNewCompareMode(t *testing.T) {
	_, err := NewCompareMode("no_such_collation", collations.StrengthPrimary, true)
	require.Error(t, err)

	m, err := NewCompareMode("utf8mb4_general_ci", collations.StrengthSecondary, false)
	require.NoError(t, err)
	assert.Equal(t, "utf8mb4_general_ci", m.Name())
	assert.Equal(t, collations.StrengthSecondary, m.Strength())
	assert.False(t, m.BinaryUnsigned())
	require.NotNil(t, m.Collation())
}
