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

package evalengine

import (
	"strings"

	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/engine"
)

// ValuesQuery is a subquery over a fixed set of rows, the materialized
// form a router hands the planner after pulling rows from a data node.
type ValuesQuery struct {
	session *engine.Session
	result  *sqltypes.Result
}

var _ Query = (*ValuesQuery)(nil)

// NewValuesQuery wraps rows as a subquery owned by the given session.
func NewValuesQuery(session *engine.Session, fields []*sqltypes.Field, rows [][]sqltypes.Value) *ValuesQuery {
	return &ValuesQuery{
		session: session,
		result:  &sqltypes.Result{Fields: fields, Rows: rows},
	}
}

// Execute returns up to maxRows rows; maxRows <= 0 returns all rows.
func (q *ValuesQuery) Execute(maxRows int) (*sqltypes.Result, error) {
	if err := q.session.CheckCancelled(); err != nil {
		return nil, err
	}
	return q.result.Truncate(maxRows), nil
}

// PlanSQL renders the rows as a VALUES constructor.
func (q *ValuesQuery) PlanSQL() string {
	var buf strings.Builder
	buf.WriteString("VALUES ")
	for i, row := range q.result.Rows {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(ValueSQL(v))
		}
		buf.WriteByte(')')
	}
	return buf.String()
}

// IsEverything holds for every visitor: the rows are already materialized.
func (q *ValuesQuery) IsEverything(visitor Visitor) bool {
	return true
}
