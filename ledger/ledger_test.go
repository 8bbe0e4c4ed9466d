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

package ledger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blinklabs-io/nodegrpc/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockDate(t *testing.T) {
	testDefs := []struct {
		input    string
		expected ledger.BlockDate
		valid    bool
	}{
		{input: "0.0", expected: ledger.BlockDate{}, valid: true},
		{input: "12.345", expected: ledger.BlockDate{Epoch: 12, Slot: 345}, valid: true},
		{input: "4294967295.1", expected: ledger.BlockDate{Epoch: 4294967295, Slot: 1}, valid: true},
		{input: "", valid: false},
		{input: "12", valid: false},
		{input: "12.", valid: false},
		{input: ".5", valid: false},
		{input: "2020-01-01", valid: false},
		{input: "-1.5", valid: false},
		{input: "4294967296.0", valid: false},
	}
	for _, testDef := range testDefs {
		date, err := ledger.ParseBlockDate(testDef.input)
		if !testDef.valid {
			assert.ErrorIs(t, err, ledger.ErrInvalidBlockDate, "input %q", testDef.input)
			continue
		}
		require.NoError(t, err, "input %q", testDef.input)
		assert.Equal(t, testDef.expected, date)
		assert.Equal(t, testDef.input, date.String())
	}
}

func TestBlockDateLess(t *testing.T) {
	assert.True(t, ledger.BlockDate{Epoch: 1, Slot: 9}.Less(ledger.BlockDate{Epoch: 2}))
	assert.True(t, ledger.BlockDate{Epoch: 2, Slot: 1}.Less(ledger.BlockDate{Epoch: 2, Slot: 2}))
	assert.False(t, ledger.BlockDate{Epoch: 2, Slot: 2}.Less(ledger.BlockDate{Epoch: 2, Slot: 2}))
}

func TestBlockIdFromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0xab}, ledger.Blake2b256Size)
	id, err := ledger.NewBlockIdFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.Bytes())
	assert.Equal(t, strings.Repeat("ab", ledger.Blake2b256Size), id.String())
	_, err = ledger.NewBlockIdFromBytes([]byte{0xaa, 0xbb})
	assert.ErrorIs(t, err, ledger.ErrInvalidBlockId)
	_, err = ledger.NewBlockIdFromHex("zz")
	assert.ErrorIs(t, err, ledger.ErrInvalidBlockId)
	fromHex, err := ledger.NewBlockIdFromHex(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, fromHex)
}

func TestBlockIdBech32(t *testing.T) {
	var id ledger.BlockId
	encoded := id.Bech32("block")
	assert.True(t, strings.HasPrefix(encoded, "block1"), "got %s", encoded)
}

func TestBlockRoundTrip(t *testing.T) {
	genesis := ledger.NewBlock(nil, ledger.BlockDate{}, nil)
	assert.True(t, genesis.Header.IsGenesis())
	child := ledger.NewBlock(
		&genesis.Header,
		ledger.BlockDate{Epoch: 0, Slot: 1},
		[][]byte{{0x01, 0x02}, {0x03}},
	)
	assert.Equal(t, uint64(1), child.ChainLength())
	assert.Equal(t, genesis.Id(), child.ParentId())
	assert.Equal(t, uint32(3), child.Header.ContentSize)
	blockCbor, err := ledger.EncodeBlock(child)
	require.NoError(t, err)
	decoded, err := ledger.NewBlockFromCbor(blockCbor)
	require.NoError(t, err)
	assert.Equal(t, child.Id(), decoded.Id())
	assert.Equal(t, child.Date(), decoded.Date())
	assert.Equal(t, child.Fragments, decoded.Fragments)
	assert.Equal(t, blockCbor, decoded.Cbor())
	// The header keeps its own original CBOR for hashing
	headerCbor, err := ledger.EncodeHeader(&child.Header)
	require.NoError(t, err)
	header, err := ledger.NewHeaderFromCbor(headerCbor)
	require.NoError(t, err)
	assert.Equal(t, headerCbor, header.Cbor())
	assert.Equal(t, child.Id(), header.Id())
}

func TestBlockFromCborMalformed(t *testing.T) {
	_, err := ledger.NewBlockFromCbor([]byte{0xff, 0x00})
	assert.ErrorIs(t, err, ledger.ErrInvalidBlock)
	blockCbor, err := ledger.EncodeBlock(ledger.NewBlock(nil, ledger.BlockDate{}, nil))
	require.NoError(t, err)
	_, err = ledger.NewBlockFromCbor(append(blockCbor, 0x00))
	assert.ErrorIs(t, err, ledger.ErrInvalidBlock)
	_, err = ledger.NewHeaderFromCbor([]byte{0x80})
	assert.ErrorIs(t, err, ledger.ErrInvalidHeader)
}

func TestCodec(t *testing.T) {
	codec := ledger.Codec()
	require.NoError(t, codec.Validate())
	block := ledger.NewBlock(nil, ledger.BlockDate{Epoch: 3, Slot: 7}, nil)
	idBytes, err := codec.EncodeId(block.Id())
	require.NoError(t, err)
	id, err := codec.DecodeId(idBytes)
	require.NoError(t, err)
	assert.Equal(t, block.Id(), id)
	date, err := codec.ParseDate("3.7")
	require.NoError(t, err)
	assert.Equal(t, block.Date(), date)
}
