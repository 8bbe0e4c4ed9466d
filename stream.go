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
	"errors"
	"io"
	"iter"
)

// messageStream is the receiving side of a server-streaming call
type messageStream[R any] interface {
	Recv() (*R, error)
}

// endedStream is a message stream that has already ended
type endedStream[R any] struct{}

func (endedStream[R]) Recv() (*R, error) {
	return nil, io.EOF
}

// ResponseStreamFuture is the pending establishment of a server-streaming call
type ResponseStreamFuture[T any] struct {
	future[*ResponseStream[T]]
}

func newResponseStreamFuture[T any, R any](
	ctx context.Context,
	executor Executor,
	open func(context.Context) (messageStream[R], error),
	convert func(*R) (T, error),
	hooks streamHooks,
) *ResponseStreamFuture[T] {
	c := startCall(ctx, executor, open)
	return &ResponseStreamFuture[T]{
		future: future[*ResponseStream[T]]{
			name: "response",
			done: c.done,
			resolve: func() (*ResponseStream[T], error) {
				if c.err != nil {
					c.cancel()
					return nil, convertError(c.err)
				}
				// The stream owns the call context from here on
				return newResponseStream(c.value, convert, c.cancel, hooks), nil
			},
			abandon: c.cancel,
			finish:  hooks.opened,
		},
	}
}

// streamHooks observe the lifecycle of a streaming call. Any of them may be nil
type streamHooks struct {
	opened   func(error)
	item     func()
	finished func(error)
}

// ResponseStream is a lazy sequence of domain values received over a server-streaming
// call. Values are delivered in the order they arrive. It cannot be restarted, and must
// be read until it ends or be closed. It is not safe for concurrent use
type ResponseStream[T any] struct {
	recv     func() (T, error)
	cancel   context.CancelFunc
	hooks    streamHooks
	finished bool
}

func newResponseStream[T any, R any](
	inner messageStream[R],
	convert func(*R) (T, error),
	cancel context.CancelFunc,
	hooks streamHooks,
) *ResponseStream[T] {
	return &ResponseStream[T]{
		recv: func() (T, error) {
			msg, err := inner.Recv()
			if err != nil {
				var zero T
				if errors.Is(err, io.EOF) {
					return zero, io.EOF
				}
				return zero, convertError(err)
			}
			return convert(msg)
		},
		cancel: cancel,
		hooks:  hooks,
	}
}

// Recv returns the next value. It returns io.EOF at the end of the sequence. Any other
// error also ends the sequence, and every later call returns io.EOF
func (s *ResponseStream[T]) Recv() (T, error) {
	var zero T
	if s.finished {
		return zero, io.EOF
	}
	item, err := s.recv()
	if err != nil {
		s.terminate(err)
		return zero, err
	}
	if s.hooks.item != nil {
		s.hooks.item()
	}
	return item, nil
}

// All returns an iterator over the remaining values. Iteration stops after the first
// error. Stopping iteration early closes the stream
func (s *ResponseStream[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := s.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(item, err)
				return
			}
			if !yield(item, nil) {
				s.Close()
				return
			}
		}
	}
}

// Close abandons the rest of the sequence
func (s *ResponseStream[T]) Close() {
	if s.finished {
		return
	}
	s.terminate(context.Canceled)
}

func (s *ResponseStream[T]) terminate(err error) {
	s.finished = true
	s.cancel()
	if s.hooks.finished != nil {
		if err == io.EOF {
			err = nil
		}
		s.hooks.finished(err)
	}
}
