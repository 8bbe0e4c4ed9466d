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
	"fmt"

	"github.com/blinklabs-io/nodegrpc/chain"
	"github.com/blinklabs-io/nodegrpc/wire"
)

// convertError maps a transport error to an Rpc error
func convertError(err error) error {
	return chain.NewError(chain.ErrorKindRpc, err)
}

func deserializeBytes[T any](decode func([]byte) (T, error), data []byte) (T, error) {
	ret, err := decode(data)
	if err != nil {
		var zero T
		return zero, chain.NewError(chain.ErrorKindFormat, err)
	}
	return ret, nil
}

func parseString[T any](parse func(string) (T, error), s string) (T, error) {
	ret, err := parse(s)
	if err != nil {
		var zero T
		return zero, chain.NewError(chain.ErrorKindFormat, err)
	}
	return ret, nil
}

// encodeIds serializes ids in order, one entry per id
func encodeIds[I any](encode func(I) ([]byte, error), ids []I) ([][]byte, error) {
	ret := make([][]byte, 0, len(ids))
	for idx, id := range ids {
		data, err := encode(id)
		if err != nil {
			return nil, chain.NewError(
				chain.ErrorKindFormat,
				fmt.Errorf("failed to encode block id %d: %w", idx, err),
			)
		}
		ret = append(ret, data)
	}
	return ret, nil
}

func convertTip[I, D any](
	decodeId func([]byte) (I, error),
	parseDate func(string) (D, error),
	resp *wire.TipResponse,
) (chain.Tip[I, D], error) {
	id, err := deserializeBytes(decodeId, resp.Id)
	if err != nil {
		return chain.Tip[I, D]{}, err
	}
	date, err := parseString(parseDate, resp.BlockDate)
	if err != nil {
		return chain.Tip[I, D]{}, err
	}
	return chain.Tip[I, D]{Id: id, Date: date}, nil
}

func convertBlock[B any](decode func([]byte) (B, error), msg *wire.Block) (B, error) {
	return deserializeBytes(decode, msg.Content)
}

func convertHeader[H any](decode func([]byte) (H, error), msg *wire.Header) (H, error) {
	return deserializeBytes(decode, msg.Content)
}
