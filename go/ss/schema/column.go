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

package schema

import (
	"strings"

	"shardsql.io/shardsql/go/sqltypes"
)

// Column is a column descriptor: its identity within the owning table and
// its declared type.
type Column struct {
	table   *Table
	ordinal int
	name    string
	typ     sqltypes.Type
}

// Table returns the owning table.
func (c *Column) Table() *Table {
	return c.table
}

// Ordinal returns the position of the column in its table.
func (c *Column) Ordinal() int {
	return c.ordinal
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Type returns the declared type.
func (c *Column) Type() sqltypes.Type {
	return c.typ
}

// Convert coerces v to the column's declared type. Unsupported coercions
// fail with the InvalidClass2 state.
func (c *Column) Convert(v sqltypes.Value) (sqltypes.Value, error) {
	return sqltypes.Cast(v, c.typ)
}

// SQL returns the column name, quoted only when required.
func (c *Column) SQL() string {
	return quoteIdentifier(c.name)
}

// quoteIdentifier leaves simple identifiers bare and double-quotes the
// rest, doubling embedded quotes.
func quoteIdentifier(s string) string {
	if isSimpleIdentifier(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func isSimpleIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
