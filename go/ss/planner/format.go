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

import "strings"

// sqlBuilder accumulates SQL text. WriteSep writes its separator on every
// call except the first, which keeps list rendering free of trailing
// separators.
type sqlBuilder struct {
	buf   strings.Builder
	items int
}

func (b *sqlBuilder) WriteString(s string) {
	b.buf.WriteString(s)
}

func (b *sqlBuilder) WriteSep(sep string) {
	if b.items > 0 {
		b.buf.WriteString(sep)
	}
	b.items++
}

func (b *sqlBuilder) String() string {
	return b.buf.String()
}
