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

package collations

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Strength selects how much of a character distinguishes two strings under
// a Unicode collation. It mirrors the standard UCA strength levels.
type Strength int

const (
	// StrengthPrimary considers base characters only.
	StrengthPrimary Strength = iota
	// StrengthSecondary also considers diacritics.
	StrengthSecondary
	// StrengthTertiary also considers case. This is the default.
	StrengthTertiary
)

func (s Strength) String() string {
	switch s {
	case StrengthPrimary:
		return "PRIMARY"
	case StrengthSecondary:
		return "SECONDARY"
	case StrengthTertiary:
		return "TERTIARY"
	}
	return "UNKNOWN"
}

// collationUnicode is a collation backed by the Unicode collation
// algorithm, tailored by a language tag and a strength.
type collationUnicode struct {
	id       ID
	name     string
	tag      language.Tag
	strength Strength

	once sync.Once
	mu   sync.Mutex
	coll *collate.Collator
	buf  collate.Buffer
}

func (c *collationUnicode) init() {
	c.once.Do(func() {
		var opts []collate.Option
		switch c.strength {
		case StrengthPrimary:
			opts = append(opts, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth)
		case StrengthSecondary:
			opts = append(opts, collate.IgnoreCase)
		}
		c.coll = collate.New(c.tag, opts...)
	})
}

func (c *collationUnicode) ID() ID {
	return c.id
}

func (c *collationUnicode) Name() string {
	return c.name
}

func (c *collationUnicode) Collate(left, right []byte) int {
	// collate.Collator is not safe for concurrent use.
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coll.Compare(left, right)
}

func (c *collationUnicode) WeightString(dst, src []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
	return append(dst, c.coll.Key(&c.buf, src)...)
}

func init() {
	register(&collationUnicode{id: 45, name: "utf8mb4_general_ci", tag: language.Und, strength: StrengthSecondary})
	register(&collationUnicode{id: 46, name: "utf8mb4_bin", tag: language.Und, strength: StrengthTertiary})
	register(&collationUnicode{id: 255, name: "utf8mb4_0900_ai_ci", tag: language.Und, strength: StrengthPrimary})
	register(&collationUnicode{id: 8, name: "latin1_swedish_ci", tag: language.Swedish, strength: StrengthSecondary})
	register(&collationUnicode{id: 33, name: "utf8mb3_general_ci", tag: language.Und, strength: StrengthSecondary})
}

var tailoredMu sync.Mutex
var tailored = make(map[string]Collation)

// Tailored returns the named collation adjusted to the given strength.
// Binary stays binary regardless of strength. Unknown names return nil.
func Tailored(name string, strength Strength) Collation {
	base := LookupByName(name)
	if base == nil {
		return nil
	}
	u, ok := base.(*collationUnicode)
	if !ok || u.strength == strength {
		return base
	}

	tailoredMu.Lock()
	defer tailoredMu.Unlock()
	key := name + "/" + strength.String()
	if c, found := tailored[key]; found {
		return c
	}
	c := &collationUnicode{id: u.id, name: u.name, tag: u.tag, strength: strength}
	c.init()
	tailored[key] = c
	return c
}
