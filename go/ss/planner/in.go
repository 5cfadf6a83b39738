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

package planner

import (
	"sort"

	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/engine"
	"shardsql.io/shardsql/go/ss/evalengine"
	"shardsql.io/shardsql/go/ss/schema"
)

// InListCondition constrains a column to a statically known list of
// scalar expressions.
type InListCondition struct {
	column *schema.Column
	list   []evalengine.Expression
}

// InQueryCondition constrains a column to the rows of a subquery.
type InQueryCondition struct {
	column *schema.Column
	query  evalengine.Query
}

var _ IndexCondition = (*InListCondition)(nil)
var _ IndexCondition = (*InQueryCondition)(nil)

// NewInList creates an IN-list index condition. Construction evaluates
// nothing and coerces nothing.
func NewInList(column *schema.Column, list []evalengine.Expression) *InListCondition {
	return &InListCondition{column: column, list: list}
}

// NewInQuery creates an IN-subquery index condition.
func NewInQuery(column *schema.Column, query evalengine.Query) *InQueryCondition {
	return &InQueryCondition{column: column, query: query}
}

// inMask is the shared mask rule for both IN forms. When combined with
// other conditions, IN(..) can only be used for regular tables: on
// virtual tables, mixing an IN bound with another bound can return wrong
// rows under reordering, so the condition is kept as a residual filter
// instead.
func inMask(column *schema.Column, peers []IndexCondition) int {
	if len(peers) > 1 {
		if column.Table().Kind() != schema.Regular {
			return 0
		}
	}
	return Equality
}

// CompareType returns CompareInList.
func (ic *InListCondition) CompareType() CompareType {
	return CompareInList
}

// Column returns the constrained column.
func (ic *InListCondition) Column() *schema.Column {
	return ic.column
}

// List returns the expression list.
func (ic *InListCondition) List() []evalengine.Expression {
	return ic.list
}

// Mask returns the comparison bit mask.
func (ic *InListCondition) Mask(peers []IndexCondition) int {
	return inMask(ic.column, peers)
}

// IsStart is false: IN drives equality lookups, not range starts.
func (ic *InListCondition) IsStart() bool {
	return false
}

// IsEnd is false.
func (ic *InListCondition) IsEnd() bool {
	return false
}

// IsAlwaysFalse is false.
func (ic *InListCondition) IsAlwaysFalse() bool {
	return false
}

// IsEvaluatable is the conjunction over the list.
func (ic *InListCondition) IsEvaluatable() bool {
	for _, e := range ic.list {
		if !e.IsEverything(evalengine.Evaluatable) {
			return false
		}
	}
	return true
}

// CurrentValueList evaluates the list. The returned values are of the
// column's type, distinct under the session's compare mode, and sorted
// ascending by it; ties under the active collation collapse to one
// representative. The slice is freshly allocated.
func (ic *InListCondition) CurrentValueList(session *engine.Session) ([]sqltypes.Value, error) {
	mode := session.Database().CompareMode()
	buckets := make(map[uint64][]sqltypes.Value, len(ic.list))
	out := make([]sqltypes.Value, 0, len(ic.list))
	for _, e := range ic.list {
		v, err := e.Evaluate(session)
		if err != nil {
			return nil, err
		}
		v, err = ic.column.Convert(v)
		if err != nil {
			return nil, err
		}
		h, err := sqltypes.HashCode(v, mode)
		if err != nil {
			return nil, err
		}
		seen := false
		for _, w := range buckets[h] {
			c, err := sqltypes.Compare(v, w, mode)
			if err != nil {
				return nil, err
			}
			if c == 0 {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		buckets[h] = append(buckets[h], v)
		out = append(out, v)
	}

	var sortErr error
	sort.Slice(out, func(i, j int) bool {
		c, err := sqltypes.Compare(out[i], out[j], mode)
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return c < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return out, nil
}

// SQL returns the SQL snippet of this comparison.
func (ic *InListCondition) SQL() string {
	var buf sqlBuilder
	buf.WriteString(ic.column.SQL())
	buf.WriteString(" IN(")
	for _, e := range ic.list {
		buf.WriteSep(", ")
		buf.WriteString(e.SQL())
	}
	buf.WriteString(")")
	return buf.String()
}

// CompareType returns CompareInQuery.
func (ic *InQueryCondition) CompareType() CompareType {
	return CompareInQuery
}

// Column returns the constrained column.
func (ic *InQueryCondition) Column() *schema.Column {
	return ic.column
}

// Query returns the subquery.
func (ic *InQueryCondition) Query() evalengine.Query {
	return ic.query
}

// Mask returns the comparison bit mask.
func (ic *InQueryCondition) Mask(peers []IndexCondition) int {
	return inMask(ic.column, peers)
}

// IsStart is false.
func (ic *InQueryCondition) IsStart() bool {
	return false
}

// IsEnd is false.
func (ic *InQueryCondition) IsEnd() bool {
	return false
}

// IsAlwaysFalse is false.
func (ic *InQueryCondition) IsAlwaysFalse() bool {
	return false
}

// IsEvaluatable delegates to the subquery.
func (ic *InQueryCondition) IsEvaluatable() bool {
	return ic.query.IsEverything(evalengine.Evaluatable)
}

// CurrentResult materializes the subquery without a row limit. The rows
// may not be of the column's type and carry no distinctness or ordering
// guarantee, unlike CurrentValueList.
func (ic *InQueryCondition) CurrentResult() (*sqltypes.Result, error) {
	return ic.query.Execute(0)
}

// SQL returns the SQL snippet of this comparison.
func (ic *InQueryCondition) SQL() string {
	var buf sqlBuilder
	buf.WriteString(ic.column.SQL())
	buf.WriteString(" IN(")
	buf.WriteString(ic.query.PlanSQL())
	buf.WriteString(")")
	return buf.String()
}
