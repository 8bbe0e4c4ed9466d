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

package ledger

import (
	"fmt"

	"github.com/blinklabs-io/nodegrpc/cbor"
)

type Block struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Header    Header
	Fragments [][]byte
}

// NewBlock builds a block on top of parent with the given fragments. A nil parent produces a
// genesis block
func NewBlock(parent *Header, date BlockDate, fragments [][]byte) *Block {
	b := &Block{
		Header: Header{
			Version:     HeaderVersion,
			Date:        date,
			ContentSize: fragmentsSize(fragments),
			ContentHash: hashFragments(fragments),
		},
		Fragments: fragments,
	}
	if parent != nil {
		b.Header.ChainLength = parent.ChainLength + 1
		b.Header.ParentId = parent.Id()
	}
	return b
}

// NewBlockFromCbor decodes a block from its CBOR representation
func NewBlockFromCbor(data []byte) (*Block, error) {
	var b Block
	if err := cbor.DecodeExact(data, &b); err != nil {
		return nil, fmt.Errorf("%w: decode error: %w", ErrInvalidBlock, err)
	}
	if b.Header.Version != HeaderVersion {
		return nil, fmt.Errorf(
			"%w: unsupported header version %d",
			ErrInvalidBlock,
			b.Header.Version,
		)
	}
	return &b, nil
}

func (b *Block) UnmarshalCBOR(cborData []byte) error {
	return b.UnmarshalCborGeneric(cborData, b)
}

// Id returns the id of the block, which is the id of its header
func (b *Block) Id() BlockId {
	return b.Header.Id()
}

func (b *Block) ParentId() BlockId {
	return b.Header.ParentId
}

func (b *Block) Date() BlockDate {
	return b.Header.Date
}

func (b *Block) ChainLength() uint64 {
	return b.Header.ChainLength
}

func fragmentsSize(fragments [][]byte) uint32 {
	var size uint32
	for _, fragment := range fragments {
		size += uint32(len(fragment))
	}
	return size
}

func hashFragments(fragments [][]byte) Blake2b256 {
	var data []byte
	for _, fragment := range fragments {
		fragmentHash := Blake2b256Hash(fragment)
		data = append(data, fragmentHash[:]...)
	}
	return Blake2b256Hash(data)
}
