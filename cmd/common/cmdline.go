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
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"
)

type GlobalFlags struct {
	Flagset   *flag.FlagSet
	Socket    string
	Address   string
	UseTls    bool
	Authority string
	Timeout   time.Duration
	Debug     bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Socket,
		"socket",
		"",
		"UNIX socket path to connect to",
	)
	f.Flagset.StringVar(
		&f.Address,
		"address",
		"",
		"TCP address to connect to in address:port format",
	)
	f.Flagset.BoolVar(&f.UseTls, "tls", false, "enable TLS")
	f.Flagset.StringVar(
		&f.Authority,
		"authority",
		"",
		"origin authority to send with requests (defaults to the peer address)",
	)
	f.Flagset.DurationVar(
		&f.Timeout,
		"timeout",
		30*time.Second,
		"time limit for connecting and for each request",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// Logger returns a logger writing to stderr at the level selected by -debug
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}
