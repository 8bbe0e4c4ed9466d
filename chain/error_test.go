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

package chain_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/blinklabs-io/nodegrpc/chain"
	"github.com/stretchr/testify/assert"
)

func TestErrorKindMatching(t *testing.T) {
	rpcErr := chain.NewError(chain.ErrorKindRpc, io.ErrUnexpectedEOF)
	formatErr := chain.NewError(chain.ErrorKindFormat, errors.New("bad date"))
	assert.ErrorIs(t, rpcErr, chain.ErrRpc)
	assert.NotErrorIs(t, rpcErr, chain.ErrFormat)
	assert.ErrorIs(t, rpcErr, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, formatErr, chain.ErrFormat)
	assert.NotErrorIs(t, formatErr, chain.ErrRpc)
	// Matching still works through additional wrapping
	wrapped := fmt.Errorf("pull blocks: %w", formatErr)
	assert.ErrorIs(t, wrapped, chain.ErrFormat)
	assert.Equal(t, chain.ErrorKindFormat, chain.KindOf(wrapped))
	assert.Equal(t, chain.ErrorKind(0), chain.KindOf(io.EOF))
}

func TestErrorString(t *testing.T) {
	err := chain.NewError(chain.ErrorKindFormat, errors.New("bad date"))
	assert.Equal(t, "malformed payload: bad date", err.Error())
	err = chain.NewError(chain.ErrorKindRpc, errors.New("connection reset"))
	assert.Equal(t, "rpc error: connection reset", err.Error())
	assert.Equal(t, "rpc", chain.ErrorKindRpc.String())
	assert.Equal(t, "unknown(9)", chain.ErrorKind(9).String())
}

func TestCodecValidate(t *testing.T) {
	var codec chain.Codec[string, string, string, string]
	err := codec.Validate()
	assert.ErrorContains(t, err, "missing DecodeId")
	assert.ErrorContains(t, err, "missing DecodeHeader")
	identity := func(b []byte) (string, error) { return string(b), nil }
	codec = chain.Codec[string, string, string, string]{
		DecodeId:     identity,
		EncodeId:     func(s string) ([]byte, error) { return []byte(s), nil },
		ParseDate:    func(s string) (string, error) { return s, nil },
		DecodeBlock:  identity,
		DecodeHeader: identity,
	}
	assert.NoError(t, codec.Validate())
}
