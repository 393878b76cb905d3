// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"net/http"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*EndpointRequester)

func WithHTTPClient(cli *http.Client) Option {
	return func(e *EndpointRequester) {
		e.cli = cli
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(e *EndpointRequester) {
		e.headers.Add(key, value)
	}
}

// WithQueryParam adds a query parameter to every request.
func WithQueryParam(key, value string) Option {
	return func(e *EndpointRequester) {
		e.queryParams.Add(key, value)
	}
}

// WithRegisterer records request metrics on [registerer]. Requesters sharing
// a registerer share the same collectors.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(e *EndpointRequester) {
		e.registerer = registerer
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(e *EndpointRequester) {
		e.tracer = tracer
	}
}

func WithLogger(log logging.Logger) Option {
	return func(e *EndpointRequester) {
		e.log = log
	}
}
