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

// Field describes one column of a Result.
type Field struct {
	Name string
	Type Type
}

// Result is an in-memory relation: the materialized output of a subquery.
// Rows are not required to be distinct, sorted, or even of uniform type
// per column.
type Result struct {
	Fields []*Field
	Rows   [][]Value
}

// RowsAffected returns the number of rows in the result.
func (result *Result) RowsAffected() int {
	return len(result.Rows)
}

// Truncate returns a result with at most maxRows rows. maxRows <= 0 means
// no limit. The fields and rows are shared, not copied.
func (result *Result) Truncate(maxRows int) *Result {
	if maxRows <= 0 || len(result.Rows) <= maxRows {
		return result
	}
	return &Result{Fields: result.Fields, Rows: result.Rows[:maxRows]}
}
