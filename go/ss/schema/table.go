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

// Package schema holds the catalog descriptors the planner reads: tables,
// their kind, and their columns. Descriptors are created during catalog
// load and are read-only afterwards.
package schema

import (
	"shardsql.io/shardsql/go/sqltypes"
)

// TableKind classifies how a table is backed. Only regular tables are
// physical base tables; everything else is computed at read time.
type TableKind int

const (
	Regular TableKind = iota
	View
	FunctionTable
	SystemTable
	External
)

func (k TableKind) String() string {
	switch k {
	case Regular:
		return "TABLE"
	case View:
		return "VIEW"
	case FunctionTable:
		return "FUNCTION TABLE"
	case SystemTable:
		return "SYSTEM TABLE"
	case External:
		return "EXTERNAL"
	}
	return "UNKNOWN"
}

// Table is a table descriptor.
type Table struct {
	name    string
	kind    TableKind
	columns []*Column
}

// NewTable creates an empty table descriptor.
func NewTable(name string, kind TableKind) *Table {
	return &Table{name: name, kind: kind}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Kind returns how the table is backed.
func (t *Table) Kind() TableKind {
	return t.kind
}

// AddColumn appends a column with the next ordinal and returns it.
func (t *Table) AddColumn(name string, typ sqltypes.Type) *Column {
	col := &Column{
		table:   t,
		ordinal: len(t.columns),
		name:    name,
		typ:     typ,
	}
	t.columns = append(t.columns, col)
	return col
}

// Columns returns the table's columns in ordinal order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column returns the named column, or nil.
func (t *Table) Column(name string) *Column {
	for _, col := range t.columns {
		if col.name == name {
			return col
		}
	}
	return nil
}

// SQL returns the table name, quoted only when required.
func (t *Table) SQL() string {
	return quoteIdentifier(t.name)
}
