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

// Package sserrors provides the error types used across the engine.
// Every error carries a Code and optionally a SQL State; both survive
// wrapping, so boundary layers can map errors without string matching.
package sserrors

import (
	"errors"
	"fmt"
)

type fundamental struct {
	code  Code
	state State
	msg   string
}

func (f *fundamental) Error() string {
	return f.msg
}

// New returns an error with the given code and message.
func New(code Code, msg string) error {
	return &fundamental{code: code, msg: msg}
}

// Errorf formats an error with the given code.
func Errorf(code Code, format string, args ...any) error {
	return &fundamental{code: code, msg: fmt.Sprintf(format, args...)}
}

// NewErrorf formats an error with the given code and state.
func NewErrorf(code Code, state State, format string, args ...any) error {
	return &fundamental{code: code, state: state, msg: fmt.Sprintf(format, args...)}
}

type wrapped struct {
	err error
	msg string
}

func (w *wrapped) Error() string {
	return w.msg + ": " + w.err.Error()
}

func (w *wrapped) Unwrap() error {
	return w.err
}

// Wrap annotates err with msg. The code and state of err are preserved.
// Wrapping nil returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrapped{err: err, msg: msg}
}

// Wrapf annotates err with a formatted message, preserving code and state.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapped{err: err, msg: fmt.Sprintf(format, args...)}
}

// ErrCode returns the code of the first coded error in err's chain.
// A nil error is CodeOK; an uncoded error is CodeUnknown.
func ErrCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var f *fundamental
	if errors.As(err, &f) {
		return f.code
	}
	return CodeUnknown
}

// ErrState returns the state of the first stated error in err's chain,
// or Undefined.
func ErrState(err error) State {
	var f *fundamental
	if errors.As(err, &f) {
		return f.state
	}
	return Undefined
}
