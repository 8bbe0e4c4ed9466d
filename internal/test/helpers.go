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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/nodegrpc/ledger"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// NewChain builds a chain of count blocks starting at a genesis block, one slot apart
func NewChain(count int) []*ledger.Block {
	var ret []*ledger.Block
	var parent *ledger.Header
	for i := range count {
		block := ledger.NewBlock(
			parent,
			ledger.BlockDate{Epoch: 0, Slot: uint32(i)},
			[][]byte{[]byte(fmt.Sprintf("fragment %d", i))},
		)
		ret = append(ret, block)
		parent = &block.Header
	}
	return ret
}

// EncodeBlock is a helper function for tests that encodes a block to CBOR. It panics on
// error, which makes it usable inline.
func EncodeBlock(block *ledger.Block) []byte {
	data, err := ledger.EncodeBlock(block)
	if err != nil {
		panic(fmt.Sprintf("error encoding block: %s", err))
	}
	return data
}
