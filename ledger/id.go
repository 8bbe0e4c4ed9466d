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
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const Blake2b256Size = 32

type Blake2b256 [Blake2b256Size]byte

func (b Blake2b256) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) Blake2b256 {
	// We can ignore the error return here because our fixed size/key arguments will
	// never trigger an error
	tmpHash, _ := blake2b.New256(nil)
	tmpHash.Write(data)
	return Blake2b256(tmpHash.Sum(nil))
}

// BlockId identifies a block by the hash of its header
type BlockId Blake2b256

// NewBlockIdFromBytes returns the BlockId with the given raw bytes
func NewBlockIdFromBytes(data []byte) (BlockId, error) {
	var id BlockId
	if len(data) != Blake2b256Size {
		return id, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidBlockId,
			Blake2b256Size,
			len(data),
		)
	}
	copy(id[:], data)
	return id, nil
}

// NewBlockIdFromHex returns the BlockId with the given hex representation
func NewBlockIdFromHex(idHex string) (BlockId, error) {
	data, err := hex.DecodeString(idHex)
	if err != nil {
		return BlockId{}, fmt.Errorf("%w: %w", ErrInvalidBlockId, err)
	}
	return NewBlockIdFromBytes(data)
}

func (i BlockId) String() string {
	return hex.EncodeToString(i[:])
}

func (i BlockId) Bytes() []byte {
	return i[:]
}

// Bech32 returns the bech32 representation of the id using the given human-readable prefix
func (i BlockId) Bech32(prefix string) string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(i[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}
