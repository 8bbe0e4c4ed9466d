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
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

type clientConfig struct {
	logger         *slog.Logger
	promRegistry   prometheus.Registerer
	transportCreds credentials.TransportCredentials
	authority      string
	dialOptions    []grpc.DialOption
	callOptions    []grpc.CallOption
}

func newClientConfig(options ...ClientOptionFunc) *clientConfig {
	c := &clientConfig{}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.transportCreds == nil {
		c.transportCreds = insecure.NewCredentials()
	}
	return c
}

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*clientConfig)

// WithLogger specifies the logger to use. Nothing is logged if none is provided
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithPromRegistry specifies the Prometheus registry to register client metrics with.
// No metrics are collected if none is provided
func WithPromRegistry(registry prometheus.Registerer) ClientOptionFunc {
	return func(c *clientConfig) {
		c.promRegistry = registry
	}
}

// WithTransportCredentials specifies the transport credentials, such as TLS. The default is
// an unencrypted connection
func WithTransportCredentials(creds credentials.TransportCredentials) ClientOptionFunc {
	return func(c *clientConfig) {
		c.transportCreds = creds
	}
}

// WithAuthority specifies the origin authority sent with every request. The default is the
// peer address for TCP peers and "localhost" otherwise
func WithAuthority(authority string) ClientOptionFunc {
	return func(c *clientConfig) {
		c.authority = authority
	}
}

// WithDialOptions specifies additional gRPC dial options
func WithDialOptions(opts ...grpc.DialOption) ClientOptionFunc {
	return func(c *clientConfig) {
		c.dialOptions = append(c.dialOptions, opts...)
	}
}

// WithCallOptions specifies additional gRPC call options used for every request
func WithCallOptions(opts ...grpc.CallOption) ClientOptionFunc {
	return func(c *clientConfig) {
		c.callOptions = append(c.callOptions, opts...)
	}
}
