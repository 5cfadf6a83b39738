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

package collations

import "bytes"

// collationBinary compares bytewise. It is the fallback for every value
// kind that has no linguistic ordering.
type collationBinary struct{}

func (collationBinary) init() {}

func (collationBinary) ID() ID {
	return CollationBinaryID
}

func (collationBinary) Name() string {
	return "binary"
}

func (collationBinary) Collate(left, right []byte) int {
	return bytes.Compare(left, right)
}

func (collationBinary) WeightString(dst, src []byte) []byte {
	return append(dst, src...)
}

func init() {
	register(collationBinary{})
}
