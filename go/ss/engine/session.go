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

// Package engine holds the per-connection execution context. A Session is
// owned by exactly one thread for the duration of a query; nothing in
// this package takes locks.
package engine

import (
	"context"

	"github.com/google/uuid"

	"shardsql.io/shardsql/go/sqltypes"
	"shardsql.io/shardsql/go/ss/log"
	"shardsql.io/shardsql/go/ss/sserrors"
)

// Database is the process-wide, read-mostly description of the database a
// session is connected to. Its CompareMode never changes after creation.
type Database struct {
	name        string
	compareMode *sqltypes.CompareMode
}

// NewDatabase creates a database descriptor. A nil mode selects the
// default compare mode.
func NewDatabase(name string, mode *sqltypes.CompareMode) *Database {
	if mode == nil {
		mode = sqltypes.DefaultCompareMode
	}
	return &Database{name: name, compareMode: mode}
}

// Name returns the database name.
func (db *Database) Name() string {
	return db.name
}

// CompareMode returns the value-ordering configuration of this database.
func (db *Database) CompareMode() *sqltypes.CompareMode {
	return db.compareMode
}

// Session is the per-connection execution context. It carries the owning
// database and the cancellation state of the current query.
type Session struct {
	id     uuid.UUID
	db     *Database
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession creates a session against db. Cancelling ctx cancels the
// session's current query.
func NewSession(ctx context.Context, db *Database) *Session {
	sctx, cancel := context.WithCancel(ctx)
	return &Session{
		id:     uuid.New(),
		db:     db,
		ctx:    sctx,
		cancel: cancel,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Database returns the database this session is connected to.
func (s *Session) Database() *Database {
	return s.db
}

// Cancel interrupts the currently running query.
func (s *Session) Cancel() {
	if log.V(2) {
		log.Infof("session %v: cancelling current query", s.id)
	}
	s.cancel()
}

// Cancelled reports whether the session's query has been interrupted.
func (s *Session) Cancelled() bool {
	return s.ctx.Err() != nil
}

// CheckCancelled returns a cancellation error once the session has been
// interrupted, and nil before that. Evaluation entry points call this so
// a cancelled query fails at its next suspension point.
func (s *Session) CheckCancelled() error {
	if s.ctx.Err() == nil {
		return nil
	}
	return sserrors.NewErrorf(sserrors.CodeCanceled, sserrors.QueryInterrupted,
		"query interrupted (session %v)", s.id)
}
