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

// Package evalengine defines the scalar expression and subquery surfaces
// the planner consumes, and the leaf expressions the engine provides.
package evalengine

import (
	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/engine"
)

// Visitor is a predicate over a whole expression tree, answered by
// IsEverything: the property holds for every node or it does not.
type Visitor int

const (
	// Evaluatable: every input is a constant, a bound parameter, or an
	// outer reference that has already been materialized.
	Evaluatable Visitor = iota
	// Deterministic: the expression yields the same value on every
	// evaluation.
	Deterministic
	// Independent: the expression references no column of the enclosing
	// query.
	Independent
)

type (
	// Expression is a scalar expression node. The planner treats it as
	// opaque: it can be evaluated against a session, rendered back to
	// SQL, and classified by a visitor. Nothing else.
	Expression interface {
		Evaluate(session *engine.Session) (sqltypes.Value, error)
		SQL() string
		IsEverything(visitor Visitor) bool
	}

	// Query is a subquery handle. Execute materializes up to maxRows rows;
	// maxRows <= 0 means all of them.
	Query interface {
		Execute(maxRows int) (*sqltypes.Result, error)
		PlanSQL() string
		IsEverything(visitor Visitor) bool
	}
)
