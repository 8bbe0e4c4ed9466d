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

package wire_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/nodegrpc/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(wire.CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, wire.CodecName, codec.Name())
}

func TestTipResponseEncoding(t *testing.T) {
	codec := wire.Codec{}
	data, err := codec.Marshal(&wire.TipResponse{
		Id:        []byte{0xaa, 0xbb},
		BlockDate: "1.2",
	})
	require.NoError(t, err)
	// [h'aabb', "1.2"]
	assert.Equal(t, "8242aabb63312e32", hex.EncodeToString(data))
	var resp wire.TipResponse
	require.NoError(t, codec.Unmarshal(data, &resp))
	assert.Equal(t, []byte{0xaa, 0xbb}, resp.Id)
	assert.Equal(t, "1.2", resp.BlockDate)
}

func TestPullBlocksToTipRequestPreservesIds(t *testing.T) {
	codec := wire.Codec{}
	from := [][]byte{{0x03}, {0x01, 0x02}, {0xff, 0x00, 0xff}}
	data, err := codec.Marshal(&wire.PullBlocksToTipRequest{From: from})
	require.NoError(t, err)
	var req wire.PullBlocksToTipRequest
	require.NoError(t, codec.Unmarshal(data, &req))
	assert.Equal(t, from, req.From)
}

func TestCodecUnmarshalErrors(t *testing.T) {
	codec := wire.Codec{}
	var block wire.Block
	// Wrong number of fields
	err := codec.Unmarshal([]byte{0x82, 0x40, 0x40}, &block)
	assert.ErrorContains(t, err, "cbor: failed to decode *wire.Block")
	// Trailing data
	err = codec.Unmarshal([]byte{0x81, 0x40, 0x00}, &block)
	assert.Error(t, err)
}
