// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed service call
type ErrorKind uint

const (
	// ErrorKindRpc is a transport or protocol level failure during an established call
	ErrorKindRpc ErrorKind = iota + 1
	// ErrorKindFormat is a payload that was received but could not be parsed into a domain value
	ErrorKindFormat
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindRpc:
		return "rpc"
	case ErrorKindFormat:
		return "format"
	default:
		return fmt.Sprintf("unknown(%d)", uint(k))
	}
}

// Sentinel errors for matching an error kind with errors.Is
var (
	ErrRpc    = errors.New("rpc error")
	ErrFormat = errors.New("malformed payload")
)

// Error is the error type returned by block and header service calls
type Error struct {
	Kind ErrorKind
	Err  error
}

// NewError returns a new Error of the given kind wrapping the given cause
func NewError(kind ErrorKind, err error) *Error {
	return &Error{
		Kind: kind,
		Err:  err,
	}
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindRpc:
		return fmt.Sprintf("%s: %s", ErrRpc, e.Err)
	case ErrorKindFormat:
		return fmt.Sprintf("%s: %s", ErrFormat, e.Err)
	default:
		return fmt.Sprintf("%s error: %s", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows matching against ErrRpc and ErrFormat in addition to the wrapped cause
func (e *Error) Is(target error) bool {
	switch target {
	case ErrRpc:
		return e.Kind == ErrorKindRpc
	case ErrFormat:
		return e.Kind == ErrorKindFormat
	}
	return false
}

// KindOf returns the kind of the first Error found in the chain of err, or 0 if there is none
func KindOf(err error) ErrorKind {
	var chainErr *Error
	if errors.As(err, &chainErr) {
		return chainErr.Kind
	}
	return 0
}
