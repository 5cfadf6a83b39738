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
	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/engine"
	"shardsql.io/shardsql/go/ss/evalengine"
	"shardsql.io/shardsql/go/ss/schema"
	"shardsql.io/shardsql/go/ss/sserrors"
)

// An IndexCondition is made for each predicate that can potentially use
// an index: one column, one comparison operator, and one right-hand side.
// The right-hand side is a scalar expression, an IN list, or an IN
// subquery, depending on the concrete type; a condition is immutable once
// built.
type IndexCondition interface {
	// CompareType returns the comparison operator.
	CompareType() CompareType
	// Column returns the constrained column; nil only for the
	// always-false condition.
	Column() *schema.Column
	// Mask returns the access-mask bits this condition contributes,
	// given every condition under consideration for the same index.
	Mask(peers []IndexCondition) int
	// IsStart reports whether the condition bounds the scan start.
	IsStart() bool
	// IsEnd reports whether the condition bounds the scan end.
	IsEnd() bool
	// IsAlwaysFalse reports whether the condition can never hold.
	IsAlwaysFalse() bool
	// IsEvaluatable reports whether the right-hand side can be evaluated
	// now. It never fails; an unevaluatable condition stays a residual
	// filter.
	IsEvaluatable() bool
	// SQL returns the predicate in SQL form, for EXPLAIN output.
	SQL() string
}

// ScalarCondition compares a column against a single scalar expression.
type ScalarCondition struct {
	op     CompareType
	column *schema.Column
	expr   evalengine.Expression
}

// falseCondition is the contradiction. It has no column and no
// right-hand side.
type falseCondition struct{}

var _ IndexCondition = (*ScalarCondition)(nil)
var _ IndexCondition = falseCondition{}

var alwaysFalseCondition IndexCondition = falseCondition{}

// NewScalar creates an index condition for one of the six scalar
// operators, or the always-false condition for CompareFalse (column and
// expression must be nil in that case). Construction evaluates nothing
// and coerces nothing.
func NewScalar(op CompareType, column *schema.Column, expr evalengine.Expression) IndexCondition {
	switch op {
	case CompareFalse:
		if column != nil || expr != nil {
			panic(sserrors.Errorf(sserrors.CodeInternal, "FALSE condition carries a payload"))
		}
		return alwaysFalseCondition
	case CompareEqual, CompareEqualNullSafe, CompareBigger, CompareBiggerEqual,
		CompareSmaller, CompareSmallerEqual:
		return &ScalarCondition{op: op, column: column, expr: expr}
	default:
		panic(sserrors.Errorf(sserrors.CodeInternal, "type=%v", op))
	}
}

// CompareType returns the comparison operator.
func (ic *ScalarCondition) CompareType() CompareType {
	return ic.op
}

// Column returns the constrained column.
func (ic *ScalarCondition) Column() *schema.Column {
	return ic.column
}

// Expression returns the right-hand side.
func (ic *ScalarCondition) Expression() evalengine.Expression {
	return ic.expr
}

// Mask returns the comparison bit mask.
func (ic *ScalarCondition) Mask(peers []IndexCondition) int {
	switch ic.op {
	case CompareEqual, CompareEqualNullSafe:
		return Equality
	case CompareBigger, CompareBiggerEqual:
		return Start
	case CompareSmaller, CompareSmallerEqual:
		return End
	default:
		panic(sserrors.Errorf(sserrors.CodeInternal, "type=%v", ic.op))
	}
}

// IsStart is true for equalities and lower bounds.
func (ic *ScalarCondition) IsStart() bool {
	switch ic.op {
	case CompareEqual, CompareEqualNullSafe, CompareBigger, CompareBiggerEqual:
		return true
	}
	return false
}

// IsEnd is true for equalities and upper bounds.
func (ic *ScalarCondition) IsEnd() bool {
	switch ic.op {
	case CompareEqual, CompareEqualNullSafe, CompareSmaller, CompareSmallerEqual:
		return true
	}
	return false
}

// IsAlwaysFalse is false for scalar conditions.
func (ic *ScalarCondition) IsAlwaysFalse() bool {
	return false
}

// IsEvaluatable delegates to the expression.
func (ic *ScalarCondition) IsEvaluatable() bool {
	return ic.expr.IsEverything(evalengine.Evaluatable)
}

// CurrentValue evaluates the right-hand side. The result is not coerced
// to the column type; callers that need that invoke Column().Convert.
func (ic *ScalarCondition) CurrentValue(session *engine.Session) (sqltypes.Value, error) {
	return ic.expr.Evaluate(session)
}

// SQL returns the SQL snippet of this comparison.
func (ic *ScalarCondition) SQL() string {
	var buf sqlBuilder
	buf.WriteString(ic.column.SQL())
	buf.WriteString(" ")
	buf.WriteString(ic.op.String())
	buf.WriteString(" ")
	buf.WriteString(ic.expr.SQL())
	return buf.String()
}

func (falseCondition) CompareType() CompareType {
	return CompareFalse
}

func (falseCondition) Column() *schema.Column {
	return nil
}

func (falseCondition) Mask(peers []IndexCondition) int {
	return AlwaysFalse
}

func (falseCondition) IsStart() bool {
	return false
}

func (falseCondition) IsEnd() bool {
	return false
}

func (falseCondition) IsAlwaysFalse() bool {
	return true
}

func (falseCondition) IsEvaluatable() bool {
	return true
}

func (falseCondition) SQL() string {
	return "FALSE"
}
