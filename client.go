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

// Package nodegrpc implements a client for the block and header services of a
// blockchain node, spoken over gRPC.
//
// The client hides the wire messages of the node protocol behind the domain
// contracts in the chain package. Every call returns a single-shot future that
// converts the response into domain values, and streaming calls yield a lazy
// sequence of domain values. The byte format of the domain types is supplied
// as a chain.Codec, so the same client serves any block model.
package nodegrpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/blinklabs-io/nodegrpc/chain"
	"github.com/blinklabs-io/nodegrpc/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// ProtocolName identifies the node protocol in log records
const ProtocolName = "node-grpc"

const (
	methodTip             = "Tip"
	methodPullBlocksToTip = "PullBlocksToTip"
)

// Client is a connection to a peer's block and header services. It exclusively owns the
// underlying transport connection. Calls may be issued concurrently; they are multiplexed
// over the connection by the transport
type Client[I, D, B, H any] struct {
	conn        *grpc.ClientConn
	node        wire.NodeClient
	peer        Peer
	executor    Executor
	codec       chain.Codec[I, D, B, H]
	logger      *slog.Logger
	metrics     *clientMetrics
	callOptions []grpc.CallOption
	onceClose   sync.Once
}

// Peer returns the peer this client is connected to
func (c *Client[I, D, B, H]) Peer() Peer {
	return c.peer
}

// Close shuts down the connection. Outstanding calls fail with an Rpc error
func (c *Client[I, D, B, H]) Close() error {
	var err error
	c.onceClose.Do(func() {
		c.logger.Debug("closing connection")
		err = c.conn.Close()
	})
	return err
}

// Tip requests the id and date of the block at the tip of the peer's chain
func (c *Client[I, D, B, H]) Tip(ctx context.Context) *ResponseFuture[chain.Tip[I, D]] {
	c.logger.Debug("calling Tip()", "method", methodTip)
	req := &wire.TipRequest{}
	return newResponseFuture(
		ctx,
		c.executor,
		func(ctx context.Context) (*wire.TipResponse, error) {
			return c.node.Tip(ctx, req, c.callOptions...)
		},
		func(resp *wire.TipResponse) (chain.Tip[I, D], error) {
			return convertTip(c.codec.DecodeId, c.codec.ParseDate, resp)
		},
		func(err error) {
			c.callFinished(methodTip, err)
		},
	)
}

// PullBlocksToTip requests the blocks following the given checkpoints up to the tip of
// the peer's chain. The future resolves once the peer has accepted the stream
func (c *Client[I, D, B, H]) PullBlocksToTip(
	ctx context.Context,
	from []I,
) *ResponseStreamFuture[B] {
	c.logger.Debug(
		"calling PullBlocksToTip()",
		"method", methodPullBlocksToTip,
		"checkpoints", len(from),
	)
	hooks := streamHooks{
		opened: func(err error) {
			if err != nil {
				c.callFinished(methodPullBlocksToTip, err)
			}
		},
		item: func() {
			c.metrics.streamItem(methodPullBlocksToTip)
		},
		finished: func(err error) {
			c.callFinished(methodPullBlocksToTip, err)
		},
	}
	ids, err := encodeIds(c.codec.EncodeId, from)
	if err != nil {
		return &ResponseStreamFuture[B]{
			future: resolvedFuture[*ResponseStream[B]]("response", err, hooks.opened),
		}
	}
	req := &wire.PullBlocksToTipRequest{From: ids}
	return newResponseStreamFuture(
		ctx,
		c.executor,
		func(ctx context.Context) (messageStream[wire.Block], error) {
			stream, err := c.node.PullBlocksToTip(ctx, req, c.callOptions...)
			if err != nil {
				return nil, err
			}
			// The stream is established once the peer sends the response headers
			md, err := stream.Header()
			if err != nil {
				return nil, err
			}
			if md == nil {
				// The call ended without headers, so Recv reports its status
				_, err := stream.Recv()
				if err == nil {
					err = errors.New("message received before response headers")
				}
				if err != io.EOF {
					return nil, err
				}
				return endedStream[wire.Block]{}, nil
			}
			return stream, nil
		},
		func(msg *wire.Block) (B, error) {
			return convertBlock(c.codec.DecodeBlock, msg)
		},
		hooks,
	)
}

// TipHeader would request the header of the block at the tip of the peer's chain. The node
// protocol does not define this request yet, so it panics with ErrTipHeaderUnsupported
// rather than return a made-up header
func (c *Client[I, D, B, H]) TipHeader(ctx context.Context) *ResponseFuture[H] {
	panic(ErrTipHeaderUnsupported)
}

func (c *Client[I, D, B, H]) callFinished(method string, err error) {
	c.metrics.requestFinished(method, err)
	if err != nil {
		c.logger.Debug(
			"call failed",
			"method", method,
			"error", err,
		)
	}
}

// watchConnection logs transport state changes until the connection is shut down
func (c *Client[I, D, B, H]) watchConnection() {
	state := c.conn.GetState()
	for state != connectivity.Shutdown {
		if !c.conn.WaitForStateChange(context.Background(), state) {
			return
		}
		state = c.conn.GetState()
		c.logger.Debug(
			"connection state changed",
			"state", state.String(),
		)
	}
}
