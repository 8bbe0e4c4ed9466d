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
	"net"
)

// Dialer opens the socket a connection runs over. [net.Dialer] satisfies this interface
type Dialer interface {
	DialContext(ctx context.Context, network string, address string) (net.Conn, error)
}

// Peer describes how to reach a remote node
type Peer struct {
	Network string
	Address string
	// Dialer is used to open the socket. A zero [net.Dialer] is used if none is provided
	Dialer Dialer
}

// TCPPeer returns a Peer for a TCP address in address:port format
func TCPPeer(address string) Peer {
	return Peer{
		Network: "tcp",
		Address: address,
	}
}

// UnixPeer returns a Peer for a UNIX socket path
func UnixPeer(path string) Peer {
	return Peer{
		Network: "unix",
		Address: path,
	}
}

func (p Peer) String() string {
	return p.Network + "://" + p.Address
}

// target returns the gRPC dial target. Name resolution is bypassed since the socket
// is always opened by the peer's dialer
func (p Peer) target() string {
	return "passthrough:///" + p.Address
}

// defaultAuthority returns the HTTP/2 authority to use when none is configured
func (p Peer) defaultAuthority() string {
	switch p.Network {
	case "tcp", "tcp4", "tcp6":
		return ""
	default:
		return "localhost"
	}
}

func (p Peer) dial(ctx context.Context) (net.Conn, error) {
	dialer := p.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}
	return dialer.DialContext(ctx, p.Network, p.Address)
}
