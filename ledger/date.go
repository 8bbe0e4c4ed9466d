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
	"strconv"
	"strings"

	"github.com/blinklabs-io/nodegrpc/cbor"
)

// BlockDate is the position of a block in time, as an epoch and a slot within that epoch
type BlockDate struct {
	cbor.StructAsArray
	Epoch uint32
	Slot  uint32
}

// ParseBlockDate parses a block date from its "epoch.slot" textual representation
func ParseBlockDate(s string) (BlockDate, error) {
	epochStr, slotStr, ok := strings.Cut(s, ".")
	if !ok {
		return BlockDate{}, fmt.Errorf(
			"%w: %q: missing '.' separator",
			ErrInvalidBlockDate,
			s,
		)
	}
	epoch, err := strconv.ParseUint(epochStr, 10, 32)
	if err != nil {
		return BlockDate{}, fmt.Errorf(
			"%w: %q: invalid epoch: %w",
			ErrInvalidBlockDate,
			s,
			err,
		)
	}
	slot, err := strconv.ParseUint(slotStr, 10, 32)
	if err != nil {
		return BlockDate{}, fmt.Errorf(
			"%w: %q: invalid slot: %w",
			ErrInvalidBlockDate,
			s,
			err,
		)
	}
	return BlockDate{Epoch: uint32(epoch), Slot: uint32(slot)}, nil
}

func (d BlockDate) String() string {
	return fmt.Sprintf("%d.%d", d.Epoch, d.Slot)
}

// Less returns whether d is earlier than other
func (d BlockDate) Less(other BlockDate) bool {
	if d.Epoch != other.Epoch {
		return d.Epoch < other.Epoch
	}
	return d.Slot < other.Slot
}
