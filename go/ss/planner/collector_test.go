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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/evalengine"
	"shardsql.io/shardsql/go/ss/schema"
)

var valueDiff = cmp.Comparer(func(v1, v2 sqltypes.Value) bool {
	if v1.Type() != v2.Type() {
		return false
	}
	c, err := sqltypes.Compare(v1, v2, nil)
	return err == nil && c == 0
})

// Scenario: A >= 10 AND A < 20 folds to a range.
func TestFoldRange(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	ic1 := NewScalar(CompareBiggerEqual, a, evalengine.NewIntLiteral(10))
	ic2 := NewScalar(CompareSmaller, a, evalengine.NewIntLiteral(20))
	conds := []IndexCondition{ic1, ic2}

	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)
	assert.False(t, access.AlwaysFalse)
	assert.Empty(t, access.Residual)

	ca := access.Columns[0]
	assert.Empty(t, ca.Equalities)
	require.NotNil(t, ca.Lower)
	assert.Equal(t, sqltypes.NewInt64(10), ca.Lower.Value)
	assert.True(t, ca.Lower.Inclusive)
	require.NotNil(t, ca.Upper)
	assert.Equal(t, sqltypes.NewInt64(20), ca.Upper.Value)
	assert.False(t, ca.Upper.Inclusive)

	assert.Equal(t, Range, ic1.Mask(conds)|ic2.Mask(conds))
	assert.Equal(t, 1, access.UsablePrefix())
}

func TestFoldTightensBounds(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	conds := []IndexCondition{
		NewScalar(CompareBigger, a, evalengine.NewIntLiteral(5)),
		NewScalar(CompareBiggerEqual, a, evalengine.NewIntLiteral(10)),
		NewScalar(CompareBigger, a, evalengine.NewIntLiteral(10)),
		NewScalar(CompareSmallerEqual, a, evalengine.NewIntLiteral(30)),
		NewScalar(CompareSmaller, a, evalengine.NewIntLiteral(40)),
	}
	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)

	ca := access.Columns[0]
	require.NotNil(t, ca.Lower)
	assert.Equal(t, sqltypes.NewInt64(10), ca.Lower.Value)
	// The strict bound at the same point wins.
	assert.False(t, ca.Lower.Inclusive)
	require.NotNil(t, ca.Upper)
	assert.Equal(t, sqltypes.NewInt64(30), ca.Upper.Value)
	assert.True(t, ca.Upper.Inclusive)
}

// Scenario: A = 1 AND A = 2 cannot both hold.
func TestFoldContradictoryEqualities(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	conds := []IndexCondition{
		NewScalar(CompareEqual, a, evalengine.NewIntLiteral(1)),
		NewScalar(CompareEqual, a, evalengine.NewIntLiteral(2)),
	}
	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)
	assert.True(t, access.AlwaysFalse)
	assert.Equal(t, 0, access.UsablePrefix())
}

func TestFoldDuplicateEqualities(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	// The same constraint twice, once via a text literal, collapses.
	conds := []IndexCondition{
		NewScalar(CompareEqual, a, evalengine.NewIntLiteral(1)),
		NewScalar(CompareEqual, a, evalengine.NewLiteral(sqltypes.NewVarChar("1"))),
	}
	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)
	assert.False(t, access.AlwaysFalse)
	assert.Empty(t, cmp.Diff([]sqltypes.Value{sqltypes.NewInt64(1)}, access.Columns[0].Equalities, valueDiff))
	assert.Equal(t, 1, access.UsablePrefix())
}

func TestFoldAlwaysFalseCondition(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	conds := []IndexCondition{
		NewScalar(CompareEqual, a, evalengine.NewIntLiteral(1)),
		NewScalar(CompareFalse, nil, nil),
	}
	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)
	assert.True(t, access.AlwaysFalse)
}

// Scenario: on a regular table, A IN (1, 3, 2, 2) combines with B = 7.
func TestFoldInListOnRegularTable(t *testing.T) {
	session := newSession(t)
	_, a, b := newTestTable(schema.Regular)

	inList := NewInList(a, intExprs(1, 3, 2, 2))
	conds := []IndexCondition{
		inList,
		NewScalar(CompareEqual, b, evalengine.NewIntLiteral(7)),
	}
	assert.Equal(t, Equality, inList.Mask(conds))

	access, err := FoldConditions(session, []*schema.Column{a, b}, conds)
	require.NoError(t, err)
	assert.Empty(t, access.Residual)

	require.NotNil(t, access.Columns[0].In)
	assert.Empty(t, cmp.Diff([]sqltypes.Value{
		sqltypes.NewInt64(1),
		sqltypes.NewInt64(2),
		sqltypes.NewInt64(3),
	}, access.Columns[0].In.Values, valueDiff))
	assert.Empty(t, cmp.Diff([]sqltypes.Value{sqltypes.NewInt64(7)}, access.Columns[1].Equalities, valueDiff))
	assert.Equal(t, 2, access.UsablePrefix())
}

// Scenario: the same predicates on a view leave the IN as a residual
// filter.
func TestFoldInListOnView(t *testing.T) {
	session := newSession(t)
	_, a, b := newTestTable(schema.View)

	inList := NewInList(a, intExprs(1, 3, 2, 2))
	conds := []IndexCondition{
		inList,
		NewScalar(CompareEqual, b, evalengine.NewIntLiteral(7)),
	}
	assert.Equal(t, 0, inList.Mask(conds))

	access, err := FoldConditions(session, []*schema.Column{a, b}, conds)
	require.NoError(t, err)
	assert.Equal(t, []IndexCondition{inList}, access.Residual)
	assert.Nil(t, access.Columns[0].In)
}

func TestFoldIntersectsInLists(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	conds := []IndexCondition{
		NewInList(a, intExprs(1, 2, 3)),
		NewInList(a, intExprs(2, 3, 4)),
	}
	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)
	require.NotNil(t, access.Columns[0].In)
	assert.Empty(t, cmp.Diff([]sqltypes.Value{
		sqltypes.NewInt64(2),
		sqltypes.NewInt64(3),
	}, access.Columns[0].In.Values, valueDiff))
}

func TestFoldEmptyIntersection(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	conds := []IndexCondition{
		NewInList(a, intExprs(1, 2)),
		NewInList(a, intExprs(3, 4)),
	}
	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)
	assert.True(t, access.AlwaysFalse)
}

func TestFoldPrefersListOverQuery(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	inQuery := NewInQuery(a, evalengine.NewValuesQuery(session, nil, [][]sqltypes.Value{{sqltypes.NewInt64(9)}}))
	inList := NewInList(a, intExprs(1, 2))

	for _, conds := range [][]IndexCondition{
		{inQuery, inList},
		{inList, inQuery},
	} {
		access, err := FoldConditions(session, []*schema.Column{a}, conds)
		require.NoError(t, err)
		require.NotNil(t, access.Columns[0].In)
		assert.NotNil(t, access.Columns[0].In.Values)
		assert.Nil(t, access.Columns[0].In.Query)
		assert.Equal(t, []IndexCondition{inQuery}, access.Residual)
	}
}

func TestFoldKeepsQueryWithoutList(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	q := evalengine.NewValuesQuery(session, nil, [][]sqltypes.Value{{sqltypes.NewInt64(9)}})
	conds := []IndexCondition{NewInQuery(a, q)}

	access, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.NoError(t, err)
	require.NotNil(t, access.Columns[0].In)
	assert.Equal(t, evalengine.Query(q), access.Columns[0].In.Query)
	assert.Equal(t, 1, access.UsablePrefix())
}

func TestFoldOffIndexAndUnevaluatable(t *testing.T) {
	session := newSession(t)
	_, a, b := newTestTable(schema.Regular)

	unbound := evalengine.NewBindVariable("p")
	offIndex := NewScalar(CompareEqual, b, evalengine.NewIntLiteral(7))
	unevaluatable := NewScalar(CompareEqual, a, unbound)
	usable := NewScalar(CompareBigger, a, evalengine.NewIntLiteral(1))

	access, err := FoldConditions(session, []*schema.Column{a}, []IndexCondition{offIndex, unevaluatable, usable})
	require.NoError(t, err)
	assert.Equal(t, []IndexCondition{offIndex, unevaluatable}, access.Residual)
	require.NotNil(t, access.Columns[0].Lower)
}

func TestUsablePrefix(t *testing.T) {
	session := newSession(t)
	tbl := schema.NewTable("TEST", schema.Regular)
	a := tbl.AddColumn("A", sqltypes.Int64)
	b := tbl.AddColumn("B", sqltypes.Int64)
	c := tbl.AddColumn("C", sqltypes.Int64)
	index := []*schema.Column{a, b, c}

	tests := []struct {
		name   string
		conds  []IndexCondition
		prefix int
	}{
		{
			"no conditions",
			nil,
			0,
		},
		{
			"equality on first",
			[]IndexCondition{NewScalar(CompareEqual, a, evalengine.NewIntLiteral(1))},
			1,
		},
		{
			"equalities then range",
			[]IndexCondition{
				NewScalar(CompareEqual, a, evalengine.NewIntLiteral(1)),
				NewScalar(CompareEqual, b, evalengine.NewIntLiteral(2)),
				NewScalar(CompareBigger, c, evalengine.NewIntLiteral(3)),
			},
			3,
		},
		{
			"gap stops the prefix",
			[]IndexCondition{
				NewScalar(CompareEqual, a, evalengine.NewIntLiteral(1)),
				NewScalar(CompareEqual, c, evalengine.NewIntLiteral(3)),
			},
			1,
		},
		{
			"range only on first",
			[]IndexCondition{NewScalar(CompareSmaller, a, evalengine.NewIntLiteral(9))},
			1,
		},
		{
			"in counts as equality",
			[]IndexCondition{
				NewInList(a, intExprs(1, 2)),
				NewScalar(CompareBiggerEqual, b, evalengine.NewIntLiteral(0)),
			},
			2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			access, err := FoldConditions(session, index, tc.conds)
			require.NoError(t, err)
			assert.Equal(t, tc.prefix, access.UsablePrefix())
		})
	}
}

// Apart from early exits, the fold result does not depend on condition
// order.
func TestFoldOrderIndependence(t *testing.T) {
	session := newSession(t)
	_, a, b := newTestTable(schema.Regular)

	forward := []IndexCondition{
		NewScalar(CompareBiggerEqual, a, evalengine.NewIntLiteral(10)),
		NewScalar(CompareSmaller, a, evalengine.NewIntLiteral(20)),
		NewScalar(CompareEqual, b, evalengine.NewIntLiteral(7)),
		NewInList(a, intExprs(12, 11)),
	}
	backward := make([]IndexCondition, len(forward))
	for i, cond := range forward {
		backward[len(forward)-1-i] = cond
	}

	index := []*schema.Column{a, b}
	access1, err := FoldConditions(session, index, forward)
	require.NoError(t, err)
	access2, err := FoldConditions(session, index, backward)
	require.NoError(t, err)

	assert.Equal(t, access1.AlwaysFalse, access2.AlwaysFalse)
	assert.Equal(t, access1.UsablePrefix(), access2.UsablePrefix())
	for i := range access1.Columns {
		c1, c2 := access1.Columns[i], access2.Columns[i]
		assert.Empty(t, cmp.Diff(c1.Equalities, c2.Equalities, valueDiff))
		assert.Equal(t, c1.Lower, c2.Lower)
		assert.Equal(t, c1.Upper, c2.Upper)
		if assert.Equal(t, c1.In == nil, c2.In == nil) && c1.In != nil {
			assert.Empty(t, cmp.Diff(c1.In.Values, c2.In.Values, valueDiff))
		}
	}
}

func TestFoldErrorPropagates(t *testing.T) {
	session := newSession(t)
	_, a, _ := newTestTable(schema.Regular)

	session.Cancel()
	conds := []IndexCondition{NewScalar(CompareEqual, a, evalengine.NewIntLiteral(1))}
	_, err := FoldConditions(session, []*schema.Column{a}, conds)
	require.Error(t, err)
}
