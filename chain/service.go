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

// Package chain defines the domain-level contracts that node service clients
// implement: the block and header services, the error taxonomy returned by
// their calls, and the byte format of the domain types they carry.
package chain

import (
	"context"
	"fmt"
)

// Tip is the identifier and date of the block at the tip of a peer's chain
type Tip[I, D any] struct {
	Id   I
	Date D
}

func (t Tip[I, D]) String() string {
	return fmt.Sprintf("Tip{Id: %v, Date: %v}", t.Id, t.Date)
}

// Future is a single-shot result of a service call
type Future[T any] interface {
	// Poll returns the result if it is available without blocking
	Poll() (T, bool, error)
	// Await blocks until the result is available or ctx is done
	Await(ctx context.Context) (T, error)
	// Done is closed when the result can be retrieved without blocking
	Done() <-chan struct{}
	// Cancel abandons the call
	Cancel()
}

// Stream is a lazy, non-restartable sequence of domain values
type Stream[T any] interface {
	// Recv returns the next value, or io.EOF at the end of the sequence
	Recv() (T, error)
	// Close abandons the remainder of the sequence
	Close()
}

// BlockService is the block retrieval capability of a peer
type BlockService[I, D, B any, F Future[Tip[I, D]], SF Future[S], S Stream[B]] interface {
	// Tip requests the peer's current chain tip
	Tip(ctx context.Context) F
	// PullBlocksToTip requests the blocks from the given checkpoints up to the peer's tip
	PullBlocksToTip(ctx context.Context, from []I) SF
}

// HeaderService is the header retrieval capability of a peer
type HeaderService[H any, F Future[H]] interface {
	// TipHeader requests the header of the block at the peer's tip
	TipHeader(ctx context.Context) F
}
