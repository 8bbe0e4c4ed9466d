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

const HeaderVersion uint16 = 1

type Header struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Version     uint16
	ChainLength uint64
	Date        BlockDate
	ParentId    BlockId
	ContentSize uint32
	ContentHash Blake2b256
}

// NewHeaderFromCbor decodes a header from its CBOR representation
func NewHeaderFromCbor(data []byte) (*Header, error) {
	var h Header
	if err := cbor.DecodeExact(data, &h); err != nil {
		return nil, fmt.Errorf("%w: decode error: %w", ErrInvalidHeader, err)
	}
	if h.Version != HeaderVersion {
		return nil, fmt.Errorf(
			"%w: unsupported version %d",
			ErrInvalidHeader,
			h.Version,
		)
	}
	return &h, nil
}

func (h *Header) UnmarshalCBOR(cborData []byte) error {
	return h.UnmarshalCborGeneric(cborData, h)
}

// Id returns the hash of the header's CBOR
func (h *Header) Id() BlockId {
	cborData := h.Cbor()
	if cborData == nil {
		var err error
		cborData, err = cbor.Encode(h)
		if err != nil {
			panic(fmt.Sprintf("unexpected error encoding header: %s", err))
		}
	}
	return BlockId(Blake2b256Hash(cborData))
}

// IsGenesis returns whether the header belongs to the first block of a chain
func (h *Header) IsGenesis() bool {
	return h.ChainLength == 0
}
