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

package sserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	err := Errorf(CodeInvalidArgument, "bad value: %d", 42)
	assert.Equal(t, "bad value: 42", err.Error())
	assert.Equal(t, CodeInvalidArgument, ErrCode(err))
	assert.Equal(t, Undefined, ErrState(err))

	assert.Equal(t, CodeOK, ErrCode(nil))
	assert.Equal(t, CodeUnknown, ErrCode(errors.New("foreign")))
}

func TestStates(t *testing.T) {
	err := NewErrorf(CodeInvalidArgument, InvalidClass2, "cannot convert")
	assert.Equal(t, CodeInvalidArgument, ErrCode(err))
	assert.Equal(t, InvalidClass2, ErrState(err))
}

func TestWrapPreservesCodeAndState(t *testing.T) {
	inner := NewErrorf(CodeCanceled, QueryInterrupted, "query interrupted")
	outer := Wrap(inner, "while evaluating")
	require.Error(t, outer)
	assert.Equal(t, "while evaluating: query interrupted", outer.Error())
	assert.Equal(t, CodeCanceled, ErrCode(outer))
	assert.Equal(t, QueryInterrupted, ErrState(outer))

	wrapped := Wrapf(outer, "condition %s", "A = 5")
	assert.Equal(t, CodeCanceled, ErrCode(wrapped))
	assert.True(t, errors.Is(wrapped, inner))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, Wrapf(nil, "nothing %d", 1))
}

func TestStdlibInterop(t *testing.T) {
	inner := New(CodeInternal, "boom")
	outer := fmt.Errorf("context: %w", inner)
	assert.Equal(t, CodeInternal, ErrCode(outer))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "INTERNAL", CodeInternal.String())
	assert.Equal(t, "CANCELED", CodeCanceled.String())
	assert.Equal(t, "OK", CodeOK.String())
}
