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

package mockpeer

import "github.com/blinklabs-io/nodegrpc/wire"

// PeerOptionFunc is a type that represents functions that modify the Peer config
type PeerOptionFunc func(*Peer)

// WithTip specifies the response to Tip requests
func WithTip(id []byte, blockDate string) PeerOptionFunc {
	return func(p *Peer) {
		p.tipResponse = &wire.TipResponse{
			Id:        id,
			BlockDate: blockDate,
		}
	}
}

// WithTipError specifies an error to answer Tip requests with
func WithTipError(err error) PeerOptionFunc {
	return func(p *Peer) {
		p.tipErr = err
	}
}

// WithTipWait delays Tip responses until the channel is closed
func WithTipWait(wait <-chan struct{}) PeerOptionFunc {
	return func(p *Peer) {
		p.tipWait = wait
	}
}

// WithBlocks specifies the block contents streamed in response to PullBlocksToTip requests
func WithBlocks(contents ...[]byte) PeerOptionFunc {
	return func(p *Peer) {
		for _, content := range contents {
			p.blocks = append(p.blocks, StreamEntry{Content: content})
		}
	}
}

// WithStreamEntries appends scripted entries to PullBlocksToTip responses
func WithStreamEntries(entries ...StreamEntry) PeerOptionFunc {
	return func(p *Peer) {
		p.blocks = append(p.blocks, entries...)
	}
}

// WithPullError specifies an error to reject PullBlocksToTip requests with
func WithPullError(err error) PeerOptionFunc {
	return func(p *Peer) {
		p.openErr = err
	}
}
