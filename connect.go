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
	"net"
	"sync"

	"github.com/blinklabs-io/nodegrpc/chain"
	"github.com/blinklabs-io/nodegrpc/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// ConnectFuture is the pending result of Connect
type ConnectFuture[I, D, B, H any] struct {
	future[*Client[I, D, B, H]]
}

// Connect starts connecting to peer on executor and returns a future that yields a ready
// Client, or a *ConnectError if the connection cannot be established. A failed attempt
// is not retried. A nil executor means DefaultExecutor. Connect panics if codec is
// incomplete
func Connect[I, D, B, H any](
	ctx context.Context,
	peer Peer,
	executor Executor,
	codec chain.Codec[I, D, B, H],
	options ...ClientOptionFunc,
) *ConnectFuture[I, D, B, H] {
	if err := codec.Validate(); err != nil {
		panic(fmt.Sprintf("invalid codec: %s", err))
	}
	if executor == nil {
		executor = DefaultExecutor
	}
	cfg := newClientConfig(options...)
	metrics := newClientMetrics(cfg.promRegistry)
	c := startCall(
		ctx,
		executor,
		func(ctx context.Context) (*Client[I, D, B, H], error) {
			return dial(ctx, peer, executor, codec, cfg, metrics)
		},
	)
	return &ConnectFuture[I, D, B, H]{
		future: future[*Client[I, D, B, H]]{
			name: "connect",
			done: c.done,
			resolve: func() (*Client[I, D, B, H], error) {
				c.cancel()
				if c.err != nil {
					return nil, c.err
				}
				return c.value, nil
			},
			abandon: func() {
				c.cancel()
				// Release a connection that completed after being abandoned
				executor.Go(func() {
					<-c.done
					if c.value != nil {
						_ = c.value.Close()
					}
				})
			},
			finish: metrics.connectFinished,
			interrupted: func(err error) error {
				return &ConnectError{Peer: peer, Err: err}
			},
		},
	}
}

// dialErrorRecorder keeps the most recent socket-level dial error, which explains a
// failed connection better than the resulting connectivity state
type dialErrorRecorder struct {
	mu  sync.Mutex
	err error
}

func (r *dialErrorRecorder) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *dialErrorRecorder) last() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func dial[I, D, B, H any](
	ctx context.Context,
	peer Peer,
	executor Executor,
	codec chain.Codec[I, D, B, H],
	cfg *clientConfig,
	metrics *clientMetrics,
) (*Client[I, D, B, H], error) {
	logger := cfg.logger.With(
		"component", "network",
		"protocol", ProtocolName,
		"peer", peer.String(),
	)
	logger.Debug("connecting to peer")
	dialErrors := &dialErrorRecorder{}
	dialOpts := []grpc.DialOption{
		grpc.WithContextDialer(
			func(ctx context.Context, _ string) (net.Conn, error) {
				conn, err := peer.dial(ctx)
				if err != nil {
					dialErrors.record(err)
				}
				return conn, err
			},
		),
		grpc.WithTransportCredentials(cfg.transportCreds),
	}
	authority := cfg.authority
	if authority == "" {
		authority = peer.defaultAuthority()
	}
	if authority != "" {
		dialOpts = append(dialOpts, grpc.WithAuthority(authority))
	}
	dialOpts = append(dialOpts, cfg.dialOptions...)
	conn, err := grpc.NewClient(peer.target(), dialOpts...)
	if err != nil {
		logger.Warn("failed to create connection", "error", err)
		return nil, &ConnectError{Peer: peer, Err: err}
	}
	if err := waitForReady(ctx, conn); err != nil {
		_ = conn.Close()
		if dialErr := dialErrors.last(); dialErr != nil {
			err = fmt.Errorf("%w: %w", err, dialErr)
		}
		logger.Warn("failed to connect", "error", err)
		return nil, &ConnectError{Peer: peer, Err: err}
	}
	logger.Debug("connected to peer")
	client := &Client[I, D, B, H]{
		conn:        conn,
		node:        wire.NewNodeClient(conn),
		peer:        peer,
		executor:    executor,
		codec:       codec,
		logger:      logger,
		metrics:     metrics,
		callOptions: cfg.callOptions,
	}
	// The watcher runs until the connection is shut down
	executor.Go(client.watchConnection)
	return client, nil
}

// waitForReady drives conn through a single connection attempt
func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	conn.Connect()
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure:
			return ErrConnectionFailed
		case connectivity.Shutdown:
			return ErrConnectionShutdown
		}
		if !conn.WaitForStateChange(ctx, state) {
			return ctx.Err()
		}
	}
}
