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

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/nodegrpc/cmd/common"
	"github.com/blinklabs-io/nodegrpc/ledger"
)

type pullBlocksFlags struct {
	*common.GlobalFlags
	from  string
	limit int
}

func main() {
	// Parse commandline
	f := pullBlocksFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(
		&f.from,
		"from",
		"",
		"comma-separated hex block ids to pull from",
	)
	f.Flagset.IntVar(&f.limit, "limit", 0, "stop after this many blocks (0 for no limit)")
	f.Parse()

	var from []ledger.BlockId
	if f.from != "" {
		for _, idHex := range strings.Split(f.from, ",") {
			id, err := ledger.NewBlockIdFromHex(strings.TrimSpace(idHex))
			if err != nil {
				fmt.Printf("ERROR: failed to decode block id: %s\n", err)
				os.Exit(1)
			}
			from = append(from, id)
		}
	}

	// Create connection
	client := common.CreateClientConnection(context.Background(), f.GlobalFlags)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), f.Timeout)
	defer cancel()
	stream, err := client.PullBlocksToTip(ctx, from).Await(ctx)
	if err != nil {
		fmt.Printf("ERROR: failed to start pulling blocks: %s\n", err)
		os.Exit(1)
	}
	defer stream.Close()

	count := 0
	for block, err := range stream.All() {
		if err != nil {
			fmt.Printf("ERROR: failed to receive block: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf(
			"date = %s, chain_length = %d, id = %s, parent = %s, fragments = %d\n",
			block.Date(),
			block.ChainLength(),
			block.Id(),
			block.ParentId(),
			len(block.Fragments),
		)
		count++
		if f.limit > 0 && count >= f.limit {
			break
		}
	}
	fmt.Printf("received %d blocks\n", count)
}
