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
	"encoding/hex"
	"strings"

	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/engine"
)

// Literal is a constant expression.
type Literal struct {
	val sqltypes.Value
}

var _ Expression = (*Literal)(nil)

// NewLiteral wraps a value as an expression.
func NewLiteral(v sqltypes.Value) *Literal {
	return &Literal{val: v}
}

// NewIntLiteral is shorthand for an INT64 literal.
func NewIntLiteral(i int64) *Literal {
	return &Literal{val: sqltypes.NewInt64(i)}
}

// NewStrLiteral is shorthand for a VARCHAR literal.
func NewStrLiteral(s string) *Literal {
	return &Literal{val: sqltypes.NewVarChar(s)}
}

// Evaluate returns the constant.
func (l *Literal) Evaluate(session *engine.Session) (sqltypes.Value, error) {
	if err := session.CheckCancelled(); err != nil {
		return sqltypes.NULL, err
	}
	return l.val, nil
}

// SQL renders the literal.
func (l *Literal) SQL() string {
	return ValueSQL(l.val)
}

// IsEverything holds for every visitor: a constant is evaluatable,
// deterministic, and independent.
func (l *Literal) IsEverything(visitor Visitor) bool {
	return true
}

// ValueSQL renders a value as a SQL literal.
func ValueSQL(v sqltypes.Value) string {
	switch {
	case v.IsNull():
		return "NULL"
	case v.Type() == sqltypes.Boolean:
		if v.ToString() == "true" {
			return "TRUE"
		}
		return "FALSE"
	case v.IsNumber():
		return v.ToString()
	case v.IsText():
		return quoteString(v.ToString())
	case v.IsBinary():
		return "X'" + hex.EncodeToString(v.Raw()) + "'"
	case v.Type() == sqltypes.Date:
		return "DATE " + quoteString(v.ToString())
	case v.Type() == sqltypes.Time:
		return "TIME " + quoteString(v.ToString())
	default:
		return "TIMESTAMP " + quoteString(v.ToString())
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
