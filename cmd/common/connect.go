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

package common

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"

	"github.com/blinklabs-io/nodegrpc"
	"github.com/blinklabs-io/nodegrpc/ledger"
	"google.golang.org/grpc/credentials"
)

// LedgerClient is a client for peers serving the reference ledger block format
type LedgerClient = nodegrpc.Client[ledger.BlockId, ledger.BlockDate, *ledger.Block, *ledger.Header]

func CreateClientConnection(ctx context.Context, f *GlobalFlags) *LedgerClient {
	var peer nodegrpc.Peer
	if f.Socket != "" {
		peer = nodegrpc.UnixPeer(f.Socket)
	} else if f.Address != "" {
		peer = nodegrpc.TCPPeer(f.Address)
	} else {
		fmt.Printf("You must specify one of -socket or -address\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
	options := []nodegrpc.ClientOptionFunc{
		nodegrpc.WithLogger(f.Logger()),
	}
	if f.UseTls {
		options = append(
			options,
			nodegrpc.WithTransportCredentials(
				credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}),
			),
		)
	}
	if f.Authority != "" {
		options = append(options, nodegrpc.WithAuthority(f.Authority))
	}
	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()
	client, err := nodegrpc.Connect(
		ctx,
		peer,
		nil,
		ledger.Codec(),
		options...,
	).Await(ctx)
	if err != nil {
		fmt.Printf("Connection failed: %s\n", err)
		os.Exit(1)
	}
	return client
}
