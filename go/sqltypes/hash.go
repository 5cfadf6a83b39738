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
	"encoding/binary"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/apd/v3"
)

// Family tags keep hashes of different families from colliding by
// construction.
const (
	hashTagNull byte = iota
	hashTagBoolean
	hashTagNumber
	hashTagTimeOfDay
	hashTagPointInTime
	hashTagText
	hashTagBinary
)

// HashCode returns a 64-bit hash of the value under the given mode.
//
// For two values of the same type family, Compare(v1, v2, mode) == 0
// implies HashCode(v1, mode) == HashCode(v2, mode): numerics hash a
// reduced decimal form, strings hash their collation weight string, and
// points in time hash their epoch encoding.
func HashCode(v Value, mode *CompareMode) (uint64, error) {
	if mode == nil {
		mode = DefaultCompareMode
	}
	h := xxhash.New()
	writeTag := func(tag byte) {
		_, _ = h.Write([]byte{tag})
	}
	switch typeFamily(v.typ) {
	case familyNull:
		writeTag(hashTagNull)
	case familyBoolean:
		b, err := v.ToBool()
		if err != nil {
			return 0, err
		}
		writeTag(hashTagBoolean)
		if b {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	case familyNumber:
		writeTag(hashTagNumber)
		if IsFloat(v.typ) {
			f, err := v.ToFloat64()
			if err != nil {
				return 0, err
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				_, _ = h.WriteString(v.ToString())
				break
			}
		}
		d, err := v.ToDecimal()
		if err != nil {
			return 0, err
		}
		var r apd.Decimal
		r.Reduce(d)
		if r.IsZero() {
			_, _ = h.WriteString("0")
		} else {
			_, _ = h.WriteString(r.Text('G'))
		}
	case familyTimeOfDay:
		writeTag(hashTagTimeOfDay)
		_, _ = h.Write(v.val)
	case familyPointInTime:
		t, err := time.Parse(temporalLayout(v.typ), string(v.val))
		if err != nil {
			return 0, err
		}
		writeTag(hashTagPointInTime)
		var epoch [8]byte
		binary.BigEndian.PutUint64(epoch[:], uint64(t.Unix()))
		_, _ = h.Write(epoch[:])
	case familyText:
		writeTag(hashTagText)
		_, _ = h.Write(mode.collation.WeightString(nil, v.val))
	default:
		writeTag(hashTagBinary)
		_, _ = h.Write(v.val)
	}
	return h.Sum64(), nil
}
