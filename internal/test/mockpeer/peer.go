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

// Package mockpeer provides an in-process node that answers requests with scripted
// responses, for testing clients without a network
package mockpeer

import (
	"context"
	"net"
	"sync"

	"github.com/blinklabs-io/nodegrpc/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const (
	Network = "bufconn"
	Address = "mockpeer"

	listenerBufferSize = 1024 * 1024
)

// StreamEntry is one step of a scripted PullBlocksToTip response
type StreamEntry struct {
	// Content is sent as a block message, unless Err is set
	Content []byte
	// Err ends the stream with the given error
	Err error
	// Wait delays the entry until the channel is closed
	Wait <-chan struct{}
}

// Peer is a mock node serving the Node service over an in-memory listener
type Peer struct {
	wire.UnimplementedNodeServer
	listener     *bufconn.Listener
	server       *grpc.Server
	tipResponse  *wire.TipResponse
	tipErr       error
	tipWait      <-chan struct{}
	openErr      error
	blocks       []StreamEntry
	mutex        sync.Mutex
	tipRequests  int
	pullRequests []*wire.PullBlocksToTipRequest
	serveDone    chan struct{}
}

// New starts a mock peer with the provided options
func New(options ...PeerOptionFunc) *Peer {
	p := &Peer{
		listener:  bufconn.Listen(listenerBufferSize),
		server:    grpc.NewServer(),
		serveDone: make(chan struct{}),
	}
	// Apply provided options functions
	for _, option := range options {
		option(p)
	}
	wire.RegisterNodeServer(p.server, p)
	go func() {
		defer close(p.serveDone)
		_ = p.server.Serve(p.listener)
	}()
	return p
}

// DialContext opens a connection to the peer. The network and address are ignored
func (p *Peer) DialContext(
	ctx context.Context,
	_ string,
	_ string,
) (net.Conn, error) {
	return p.listener.DialContext(ctx)
}

// Close stops the peer, ending any active calls
func (p *Peer) Close() {
	p.server.Stop()
	<-p.serveDone
}

// TipRequests returns the number of Tip requests received
func (p *Peer) TipRequests() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.tipRequests
}

// PullRequests returns the PullBlocksToTip requests received, in order
func (p *Peer) PullRequests() []*wire.PullBlocksToTipRequest {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	ret := make([]*wire.PullBlocksToTipRequest, len(p.pullRequests))
	copy(ret, p.pullRequests)
	return ret
}

func (p *Peer) Tip(
	ctx context.Context,
	_ *wire.TipRequest,
) (*wire.TipResponse, error) {
	p.mutex.Lock()
	p.tipRequests++
	p.mutex.Unlock()
	if p.tipWait != nil {
		select {
		case <-p.tipWait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.tipErr != nil {
		return nil, p.tipErr
	}
	return p.tipResponse, nil
}

func (p *Peer) PullBlocksToTip(
	req *wire.PullBlocksToTipRequest,
	stream grpc.ServerStreamingServer[wire.Block],
) error {
	p.mutex.Lock()
	p.pullRequests = append(p.pullRequests, req)
	p.mutex.Unlock()
	if p.openErr != nil {
		return p.openErr
	}
	for _, entry := range p.blocks {
		if entry.Wait != nil {
			select {
			case <-entry.Wait:
			case <-stream.Context().Done():
				return stream.Context().Err()
			}
		}
		if entry.Err != nil {
			return entry.Err
		}
		if err := stream.Send(&wire.Block{Content: entry.Content}); err != nil {
			return err
		}
	}
	return nil
}
