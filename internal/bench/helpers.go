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

// Package bench provides benchmark fixtures for block decoding and client
// round trips.
package bench

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/blinklabs-io/nodegrpc/ledger"
)

// BlockFixture contains a pre-encoded block for benchmarking.
type BlockFixture struct {
	Name  string
	Cbor  []byte
	Block *ledger.Block
}

// fragmentLayouts maps fixture names to fragment count and fragment size
var fragmentLayouts = map[string][2]int{
	"empty":  {0, 0},
	"small":  {4, 128},
	"medium": {64, 512},
	"large":  {512, 2048},
}

// FixtureNames returns the names accepted by LoadBlockFixture
func FixtureNames() []string {
	return []string{"empty", "small", "medium", "large"}
}

// LoadBlockFixture builds a block with the fragment layout of the given name.
func LoadBlockFixture(name string) (*BlockFixture, error) {
	layout, ok := fragmentLayouts[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown fixture: %s", name)
	}
	fragments := make([][]byte, 0, layout[0])
	for i := range layout[0] {
		fragments = append(
			fragments,
			bytes.Repeat([]byte{byte(i)}, layout[1]),
		)
	}
	block := ledger.NewBlock(
		nil,
		ledger.BlockDate{Epoch: 1, Slot: 42},
		fragments,
	)
	cborData, err := ledger.EncodeBlock(block)
	if err != nil {
		return nil, fmt.Errorf("encode %s block: %w", name, err)
	}
	return &BlockFixture{
		Name:  name,
		Cbor:  cborData,
		Block: block,
	}, nil
}

// MustLoadBlockFixture loads a block fixture and panics on error.
// Use this in benchmark setup code.
func MustLoadBlockFixture(name string) *BlockFixture {
	fixture, err := LoadBlockFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s block fixture: %v", name, err))
	}
	return fixture
}
