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
	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/engine"
	"shardsql.io/shardsql/go/ss/sserrors"
)

// BindVariable is a statement parameter. It becomes evaluatable once a
// value has been bound, which happens between prepare and execute.
type BindVariable struct {
	name string
	val  *sqltypes.Value
}

var _ Expression = (*BindVariable)(nil)

// NewBindVariable creates an unbound parameter.
func NewBindVariable(name string) *BindVariable {
	return &BindVariable{name: name}
}

// Name returns the parameter name.
func (bv *BindVariable) Name() string {
	return bv.name
}

// Bind supplies the parameter value.
func (bv *BindVariable) Bind(v sqltypes.Value) {
	bv.val = &v
}

// Evaluate returns the bound value.
func (bv *BindVariable) Evaluate(session *engine.Session) (sqltypes.Value, error) {
	if err := session.CheckCancelled(); err != nil {
		return sqltypes.NULL, err
	}
	if bv.val == nil {
		return sqltypes.NULL, sserrors.NewErrorf(sserrors.CodeNotFound, sserrors.NoSuchBindVariable,
			"query arguments missing for %s", bv.name)
	}
	return *bv.val, nil
}

// SQL renders the parameter placeholder.
func (bv *BindVariable) SQL() string {
	return ":" + bv.name
}

// IsEverything reports the visitor properties of a parameter: bound
// parameters are evaluatable; parameters are always deterministic and
// independent.
func (bv *BindVariable) IsEverything(visitor Visitor) bool {
	switch visitor {
	case Evaluatable:
		return bv.val != nil
	case Deterministic, Independent:
		return true
	}
	return false
}
