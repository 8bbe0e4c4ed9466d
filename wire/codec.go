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

package wire

import (
	"fmt"

	"github.com/blinklabs-io/nodegrpc/cbor"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype used for node messages
const CodecName = "cbor"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec is a gRPC codec that encodes messages as CBOR
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	data, err := cbor.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to encode %T: %w", CodecName, v, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	if err := cbor.DecodeExact(data, v); err != nil {
		return fmt.Errorf("%s: failed to decode %T: %w", CodecName, v, err)
	}
	return nil
}

func (Codec) Name() string {
	return CodecName
}
