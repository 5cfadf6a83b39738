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

// Bound is one end of a scan range.
type Bound struct {
	Value     sqltypes.Value
	Inclusive bool
}

// InSource is the single IN constraint retained for a column: either a
// materialized value list or a subquery, never both.
type InSource struct {
	Values []sqltypes.Value
	Query  evalengine.Query
}

// ColumnAccess is the folded constraint summary for one index column.
type ColumnAccess struct {
	Column     *schema.Column
	Equalities []sqltypes.Value
	Lower      *Bound
	Upper      *Bound
	In         *InSource
}

// IndexAccess is the result of folding a set of index conditions over
// the columns of one candidate index.
type IndexAccess struct {
	// Columns is aligned with the index columns passed to the fold.
	Columns []ColumnAccess
	// AlwaysFalse is set when the conditions contradict each other; the
	// index scan can be skipped entirely.
	AlwaysFalse bool
	// Residual lists the conditions that could not be pushed into index
	// access and must be evaluated after the scan.
	Residual []IndexCondition
}

// UsablePrefix returns the length of the longest index prefix the folded
// constraints can drive: leading columns with equality-class constraints,
// extended by at most one column with a range bound.
func (access *IndexAccess) UsablePrefix() int {
	if access.AlwaysFalse {
		return 0
	}
	p := 0
	for p < len(access.Columns) {
		ca := &access.Columns[p]
		if len(ca.Equalities) == 0 && ca.In == nil {
			break
		}
		p++
	}
	if p < len(access.Columns) && (access.Columns[p].Lower != nil || access.Columns[p].Upper != nil) {
		p++
	}
	return p
}

// FoldConditions folds conds into per-column access bounds for an index
// over indexColumns. Conditions on other columns, unevaluatable
// conditions, and conditions whose mask comes back empty are reported as
// residual filters. Evaluation and coercion errors propagate unchanged.
//
// Apart from the early exit on a contradiction, the outcome depends only
// on the set of conditions, not their order.
func FoldConditions(session *engine.Session, indexColumns []*schema.Column, conds []IndexCondition) (*IndexAccess, error) {
	mode := session.Database().CompareMode()
	access := &IndexAccess{Columns: make([]ColumnAccess, len(indexColumns))}
	pos := make(map[*schema.Column]int, len(indexColumns))
	for i, col := range indexColumns {
		access.Columns[i].Column = col
		pos[col] = i
	}
	eqSets := make([]map[uint64][]sqltypes.Value, len(indexColumns))
	// inConds remembers which condition supplied each column's current
	// IN source, so a displaced one goes residual as itself.
	inConds := make([]IndexCondition, len(indexColumns))

	for _, cond := range conds {
		if cond.IsAlwaysFalse() {
			return &IndexAccess{Columns: access.Columns, AlwaysFalse: true}, nil
		}
		i, onIndex := pos[cond.Column()]
		if !onIndex || !cond.IsEvaluatable() || cond.Mask(conds) == 0 {
			access.Residual = append(access.Residual, cond)
			continue
		}
		ca := &access.Columns[i]

		switch cond := cond.(type) {
		case *ScalarCondition:
			v, err := cond.CurrentValue(session)
			if err != nil {
				return nil, err
			}
			v, err = cond.Column().Convert(v)
			if err != nil {
				return nil, err
			}
			switch cond.CompareType() {
			case CompareEqual, CompareEqualNullSafe:
				contradiction, err := addEquality(ca, eqSets, i, v, mode)
				if err != nil {
					return nil, err
				}
				if contradiction {
					return &IndexAccess{Columns: access.Columns, AlwaysFalse: true}, nil
				}
			case CompareBigger, CompareBiggerEqual:
				if err := tightenLower(ca, v, cond.CompareType() == CompareBiggerEqual, mode); err != nil {
					return nil, err
				}
			case CompareSmaller, CompareSmallerEqual:
				if err := tightenUpper(ca, v, cond.CompareType() == CompareSmallerEqual, mode); err != nil {
					return nil, err
				}
			}

		case *InListCondition:
			values, err := cond.CurrentValueList(session)
			if err != nil {
				return nil, err
			}
			switch {
			case ca.In == nil:
				ca.In = &InSource{Values: values}
				inConds[i] = cond
			case ca.In.Values != nil:
				intersected, err := intersectSorted(ca.In.Values, values, mode)
				if err != nil {
					return nil, err
				}
				ca.In.Values = intersected
			default:
				// A value list beats a subquery; the subquery becomes a
				// residual filter.
				access.Residual = append(access.Residual, inConds[i])
				ca.In = &InSource{Values: values}
				inConds[i] = cond
			}
			if ca.In.Values != nil && len(ca.In.Values) == 0 {
				return &IndexAccess{Columns: access.Columns, AlwaysFalse: true}, nil
			}

		case *InQueryCondition:
			switch {
			case ca.In == nil:
				ca.In = &InSource{Query: cond.Query()}
				inConds[i] = cond
			case ca.In.Values != nil:
				access.Residual = append(access.Residual, cond)
			default:
				// Two subqueries on one column: keep the one with the
				// smaller plan text so the choice does not depend on
				// condition order; the other stays residual.
				if cond.Query().PlanSQL() < ca.In.Query.PlanSQL() {
					access.Residual = append(access.Residual, inConds[i])
					ca.In = &InSource{Query: cond.Query()}
					inConds[i] = cond
				} else {
					access.Residual = append(access.Residual, cond)
				}
			}

		default:
			return nil, sserrors.Errorf(sserrors.CodeInternal, "unexpected index condition %T", cond)
		}
	}
	return access, nil
}

// addEquality records an equality constraint. Distinct constraint values
// on the same column cannot both hold; that is reported as a
// contradiction.
func addEquality(ca *ColumnAccess, eqSets []map[uint64][]sqltypes.Value, i int, v sqltypes.Value, mode *sqltypes.CompareMode) (contradiction bool, err error) {
	if eqSets[i] == nil {
		eqSets[i] = make(map[uint64][]sqltypes.Value)
	}
	h, err := sqltypes.HashCode(v, mode)
	if err != nil {
		return false, err
	}
	for _, w := range eqSets[i][h] {
		c, err := sqltypes.Compare(v, w, mode)
		if err != nil {
			return false, err
		}
		if c == 0 {
			return false, nil
		}
	}
	if len(ca.Equalities) > 0 {
		return true, nil
	}
	eqSets[i][h] = append(eqSets[i][h], v)
	ca.Equalities = append(ca.Equalities, v)
	return false, nil
}

func tightenLower(ca *ColumnAccess, v sqltypes.Value, inclusive bool, mode *sqltypes.CompareMode) error {
	if ca.Lower == nil {
		ca.Lower = &Bound{Value: v, Inclusive: inclusive}
		return nil
	}
	c, err := sqltypes.Compare(v, ca.Lower.Value, mode)
	if err != nil {
		return err
	}
	switch {
	case c > 0:
		ca.Lower = &Bound{Value: v, Inclusive: inclusive}
	case c == 0 && !inclusive:
		ca.Lower.Inclusive = false
	}
	return nil
}

func tightenUpper(ca *ColumnAccess, v sqltypes.Value, inclusive bool, mode *sqltypes.CompareMode) error {
	if ca.Upper == nil {
		ca.Upper = &Bound{Value: v, Inclusive: inclusive}
		return nil
	}
	c, err := sqltypes.Compare(v, ca.Upper.Value, mode)
	if err != nil {
		return err
	}
	switch {
	case c < 0:
		ca.Upper = &Bound{Value: v, Inclusive: inclusive}
	case c == 0 && !inclusive:
		ca.Upper.Inclusive = false
	}
	return nil
}

// intersectSorted intersects two value lists that are sorted and
// distinct under mode.
func intersectSorted(a, b []sqltypes.Value, mode *sqltypes.CompareMode) ([]sqltypes.Value, error) {
	out := make([]sqltypes.Value, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c, err := sqltypes.Compare(a[i], b[j], mode)
		if err != nil {
			return nil, err
		}
		switch {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out, nil
}
