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

// Package planner implements the index-condition algebra: the atomic
// predicates collected during WHERE analysis, the access mask each one
// contributes to a candidate index, and the per-index fold that turns
// them into access bounds.
package planner

import "fmt"

// CompareType identifies the comparison operator of an index condition.
type CompareType int

const (
	// CompareEqual is `col = expr`; NULL never matches.
	CompareEqual CompareType = iota
	// CompareEqualNullSafe is `col IS expr`; NULL matches NULL.
	CompareEqualNullSafe
	// CompareBigger is `col > expr`.
	CompareBigger
	// CompareBiggerEqual is `col >= expr`.
	CompareBiggerEqual
	// CompareSmaller is `col < expr`.
	CompareSmaller
	// CompareSmallerEqual is `col <= expr`.
	CompareSmallerEqual
	// CompareInList is `col IN (e1, .., en)`.
	CompareInList
	// CompareInQuery is `col IN (subquery)`.
	CompareInQuery
	// CompareFalse is a contradiction detected during analysis.
	CompareFalse
)

// String returns the SQL symbol of the operator where one exists.
func (t CompareType) String() string {
	switch t {
	case CompareEqual:
		return "="
	case CompareEqualNullSafe:
		return "IS"
	case CompareBigger:
		return ">"
	case CompareBiggerEqual:
		return ">="
	case CompareSmaller:
		return "<"
	case CompareSmallerEqual:
		return "<="
	case CompareInList, CompareInQuery:
		return "IN"
	case CompareFalse:
		return "FALSE"
	}
	return fmt.Sprintf("CompareType(%d)", int(t))
}

// Bits of the access mask an index condition contributes for a column.
const (
	// Equality is a bit of a search mask meaning 'equal'.
	Equality = 1

	// Start is a bit of a search mask meaning 'larger or equal'.
	Start = 2

	// End is a bit of a search mask meaning 'smaller or equal'.
	End = 4

	// Range is a search mask meaning 'between'.
	Range = Start | End

	// AlwaysFalse is a bit of a search mask meaning 'the condition is
	// always false'.
	AlwaysFalse = 8
)
