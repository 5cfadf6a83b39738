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

// Package collations maintains the registry of collations known to the
// engine and implements their comparison and weight-string primitives.
package collations

import (
	"fmt"
)

// ID is a numeric collation identifier. IDs are stable for the lifetime
// of a database and may be persisted in plans.
type ID uint16

// Unknown is the zero value of a collation ID; it never resolves.
const Unknown ID = 0

// CollationBinaryID is the ID of the binary collation.
const CollationBinaryID ID = 63

// Collation is a comparison strategy over encoded strings. All
// implementations live in this package; the interface cannot be satisfied
// externally.
type Collation interface {
	init()

	// ID returns the numeric identifier of the collation.
	ID() ID
	// Name returns the name of the collation, e.g. "utf8mb4_general_ci".
	Name() string
	// Collate compares left and right, returning a negative, zero or
	// positive result with the usual semantics.
	Collate(left, right []byte) int
	// WeightString appends to dst a byte string that compares bytewise the
	// way the collation compares the source strings.
	WeightString(dst, src []byte) []byte
}

var collationsByName = make(map[string]Collation)
var collationsByID = make(map[ID]Collation)

func register(c Collation) {
	duplicated := func(old Collation) {
		panic(fmt.Sprintf("duplicated collation: %s[%d] (existing collation is %s[%d])",
			c.Name(), c.ID(), old.Name(), old.ID(),
		))
	}
	if old, found := collationsByName[c.Name()]; found {
		duplicated(old)
	}
	if old, found := collationsByID[c.ID()]; found {
		duplicated(old)
	}
	collationsByName[c.Name()] = c
	collationsByID[c.ID()] = c
}

// LookupByName returns the collation with the given name, or nil if there
// is no such collation.
func LookupByName(name string) Collation {
	csi := collationsByName[name]
	if csi != nil {
		csi.init()
	}
	return csi
}

// LookupByID returns the collation with the given ID, or nil if there is
// no such collation.
func LookupByID(id ID) Collation {
	csi := collationsByID[id]
	if csi != nil {
		csi.init()
	}
	return csi
}

// All returns every registered collation.
func All() (all []Collation) {
	all = make([]Collation, 0, len(collationsByID))
	for _, col := range collationsByID {
		col.init()
		all = append(all, col)
	}
	return
}

// Default returns the collation used when no collation has been configured
// explicitly. It is the binary collation: bytewise, deterministic, and
// independent of any locale tables.
func Default() Collation {
	return LookupByID(CollationBinaryID)
}
