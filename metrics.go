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
	"context"
	"errors"

	"github.com/blinklabs-io/nodegrpc/chain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "nodegrpc"
	metricsSubsystem = "client"
)

// clientMetrics is safe to use as a nil pointer, which collects nothing
type clientMetrics struct {
	requests    *prometheus.CounterVec
	streamItems *prometheus.CounterVec
	connects    *prometheus.CounterVec
}

func newClientMetrics(registry prometheus.Registerer) *clientMetrics {
	if registry == nil {
		return nil
	}
	m := &clientMetrics{}
	m.requests = registerCounterVec(
		registry,
		prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "requests_total",
				Help:      "Total number of completed requests by method and result",
			},
			[]string{"method", "result"},
		),
	)
	m.streamItems = registerCounterVec(
		registry,
		prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "stream_items_total",
				Help:      "Total number of items received on streaming calls",
			},
			[]string{"method"},
		),
	)
	m.connects = registerCounterVec(
		registry,
		prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "connects_total",
				Help:      "Total number of connection attempts by result",
			},
			[]string{"result"},
		),
	)
	return m
}

// registerCounterVec registers a counter, reusing an identical one registered by another client
func registerCounterVec(
	registry prometheus.Registerer,
	counter *prometheus.CounterVec,
) *prometheus.CounterVec {
	if err := registry.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return counter
}

func (m *clientMetrics) requestFinished(method string, err error) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, resultLabel(err)).Inc()
}

func (m *clientMetrics) streamItem(method string) {
	if m == nil {
		return
	}
	m.streamItems.WithLabelValues(method).Inc()
}

func (m *clientMetrics) connectFinished(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.connects.WithLabelValues(result).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	switch chain.KindOf(err) {
	case chain.ErrorKindRpc:
		return "rpc"
	case chain.ErrorKindFormat:
		return "format"
	}
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	return "error"
}
