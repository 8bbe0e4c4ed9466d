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

// Package ledger provides a reference block model for node service clients: block ids
// are Blake2b-256 hashes of CBOR-encoded headers and block dates are epoch/slot pairs.
package ledger

import (
	"github.com/blinklabs-io/nodegrpc/cbor"
	"github.com/blinklabs-io/nodegrpc/chain"
)

// Codec returns the byte format of the ledger types
func Codec() chain.Codec[BlockId, BlockDate, *Block, *Header] {
	return chain.Codec[BlockId, BlockDate, *Block, *Header]{
		DecodeId: NewBlockIdFromBytes,
		EncodeId: func(id BlockId) ([]byte, error) {
			return id.Bytes(), nil
		},
		ParseDate:    ParseBlockDate,
		DecodeBlock:  NewBlockFromCbor,
		DecodeHeader: NewHeaderFromCbor,
	}
}

// EncodeBlock returns the CBOR representation of a block
func EncodeBlock(b *Block) ([]byte, error) {
	if cborData := b.Cbor(); cborData != nil {
		return cborData, nil
	}
	return cbor.Encode(b)
}

// EncodeHeader returns the CBOR representation of a header
func EncodeHeader(h *Header) ([]byte, error) {
	if cborData := h.Cbor(); cborData != nil {
		return cborData, nil
	}
	return cbor.Encode(h)
}
