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
	"errors"
	"fmt"
)

var (
	// ErrTipHeaderUnsupported is the panic value of Client.TipHeader
	ErrTipHeaderUnsupported = errors.New("tip header request is not implemented")

	ErrConnectionFailed   = errors.New("transport connection failed")
	ErrConnectionShutdown = errors.New("transport connection was shut down")
)

// ConnectError is returned when a connection to a peer cannot be established
type ConnectError struct {
	Peer Peer
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connection error: %s: %s", e.Peer, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}
