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

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBlockFixture(t *testing.T) {
	for _, name := range FixtureNames() {
		t.Run(name, func(t *testing.T) {
			fixture, err := LoadBlockFixture(name)
			require.NoError(t, err)
			require.NotNil(t, fixture)

			assert.Equal(t, name, fixture.Name)
			assert.NotNil(t, fixture.Block)
			assert.NotEmpty(t, fixture.Cbor)
		})
	}
}

func TestLoadBlockFixture_Unknown(t *testing.T) {
	_, err := LoadBlockFixture("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fixture")
}
