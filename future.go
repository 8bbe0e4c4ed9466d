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

package nodegrpc

import (
	"context"
	"fmt"

	"github.com/blinklabs-io/nodegrpc/chain"
)

// call is an operation running on an executor. Its outcome is only read after done is closed
type call[R any] struct {
	done   chan struct{}
	value  R
	err    error
	cancel context.CancelFunc
}

func startCall[R any](
	ctx context.Context,
	executor Executor,
	fn func(context.Context) (R, error),
) *call[R] {
	ctx, cancel := context.WithCancel(ctx)
	c := &call[R]{
		done:   make(chan struct{}),
		cancel: cancel,
	}
	executor.Go(func() {
		c.value, c.err = fn(ctx)
		close(c.done)
	})
	return c
}

type futureState uint8

const (
	futureStatePending futureState = iota
	futureStateFinished
)

// future is the state machine shared by the call adapters. It moves from pending to
// finished exactly once, on the Poll or Await that produces the outcome. It is not safe
// for concurrent use
type future[T any] struct {
	name    string
	state   futureState
	done    <-chan struct{}
	resolve func() (T, error)
	abandon func()
	finish  func(error)
	// interrupted maps the context error that ended an Await. Nil means an Rpc error
	interrupted func(error) error
}

// Done returns a channel that is closed once Poll will return a result
func (f *future[T]) Done() <-chan struct{} {
	return f.done
}

// Poll returns the outcome if it is available and false otherwise. Calling Poll or Await
// again after an outcome has been returned panics
func (f *future[T]) Poll() (T, bool, error) {
	var zero T
	f.checkPending()
	select {
	case <-f.done:
	default:
		return zero, false, nil
	}
	ret, err := f.complete()
	return ret, true, err
}

// Await blocks until the outcome is available or ctx is done. An outcome that is already
// available is returned even if ctx is done. Otherwise the call is abandoned and an error
// wrapping the context error is returned
func (f *future[T]) Await(ctx context.Context) (T, error) {
	var zero T
	f.checkPending()
	select {
	case <-f.done:
		return f.complete()
	default:
	}
	select {
	case <-f.done:
		return f.complete()
	case <-ctx.Done():
		f.state = futureStateFinished
		f.abandon()
		err := f.interrupt(ctx.Err())
		f.report(err)
		return zero, err
	}
}

// Cancel abandons a pending call, which is reported as cancelled. It has no effect once an
// outcome has been returned
func (f *future[T]) Cancel() {
	if f.state != futureStatePending {
		return
	}
	f.state = futureStateFinished
	f.abandon()
	f.report(context.Canceled)
}

func (f *future[T]) checkPending() {
	if f.state == futureStateFinished {
		panic(fmt.Sprintf("polled a finished %s", f.name))
	}
}

func (f *future[T]) complete() (T, error) {
	f.state = futureStateFinished
	ret, err := f.resolve()
	f.report(err)
	return ret, err
}

func (f *future[T]) interrupt(err error) error {
	if f.interrupted != nil {
		return f.interrupted(err)
	}
	return chain.NewError(chain.ErrorKindRpc, err)
}

func (f *future[T]) report(err error) {
	if f.finish != nil {
		f.finish(err)
	}
}

// resolvedFuture returns a future that is already done with the given error
func resolvedFuture[T any](name string, err error, finish func(error)) future[T] {
	done := make(chan struct{})
	close(done)
	return future[T]{
		name: name,
		done: done,
		resolve: func() (T, error) {
			var zero T
			return zero, err
		},
		abandon: func() {},
		finish:  finish,
	}
}
