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
)

// ResponseFuture is the pending result of a unary call, converted to a domain value
type ResponseFuture[T any] struct {
	future[T]
}

func newResponseFuture[T any, R any](
	ctx context.Context,
	executor Executor,
	invoke func(context.Context) (*R, error),
	convert func(*R) (T, error),
	finish func(error),
) *ResponseFuture[T] {
	c := startCall(ctx, executor, invoke)
	return &ResponseFuture[T]{
		future: future[T]{
			name: "response",
			done: c.done,
			resolve: func() (T, error) {
				// The call is complete, so this only releases the context
				c.cancel()
				if c.err != nil {
					var zero T
					return zero, convertError(c.err)
				}
				return convert(c.value)
			},
			abandon: c.cancel,
			finish:  finish,
		},
	}
}
