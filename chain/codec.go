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

package chain

import "errors"

// Codec is the byte format of a set of domain types: block identifier (I), block
// date (D), block (B) and header (H). Every function must be safe to call from
// multiple goroutines
type Codec[I, D, B, H any] struct {
	DecodeId     func(data []byte) (I, error)
	EncodeId     func(id I) ([]byte, error)
	ParseDate    func(s string) (D, error)
	DecodeBlock  func(data []byte) (B, error)
	DecodeHeader func(data []byte) (H, error)
}

// Validate returns an error if any of the codec functions is missing
func (c Codec[I, D, B, H]) Validate() error {
	var errs []error
	if c.DecodeId == nil {
		errs = append(errs, errors.New("codec: missing DecodeId"))
	}
	if c.EncodeId == nil {
		errs = append(errs, errors.New("codec: missing EncodeId"))
	}
	if c.ParseDate == nil {
		errs = append(errs, errors.New("codec: missing ParseDate"))
	}
	if c.DecodeBlock == nil {
		errs = append(errs, errors.New("codec: missing DecodeBlock"))
	}
	if c.DecodeHeader == nil {
		errs = append(errs, errors.New("codec: missing DecodeHeader"))
	}
	return errors.Join(errs...)
}
