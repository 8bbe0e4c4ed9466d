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

	"github.com/blinklabs-io/nodegrpc/cmd/common"
)

type chainTipFlags struct {
	*common.GlobalFlags
	bech32Prefix string
}

func main() {
	// Parse commandline
	f := chainTipFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(
		&f.bech32Prefix,
		"bech32-prefix",
		"",
		"also print the block id in bech32 format with the given prefix",
	)
	f.Parse()
	// Create connection
	client := common.CreateClientConnection(context.Background(), f.GlobalFlags)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), f.Timeout)
	defer cancel()
	tip, err := client.Tip(ctx).Await(ctx)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Current chain tip:\n\n")
	fmt.Printf("Block id: %s\n", tip.Id)
	if f.bech32Prefix != "" {
		fmt.Printf("Block id (bech32): %s\n", tip.Id.Bech32(f.bech32Prefix))
	}
	fmt.Printf("Block date: %s\n", tip.Date)
}
