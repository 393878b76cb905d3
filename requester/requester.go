// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	oteltrace "go.opentelemetry.io/otel/trace"

	tracing "github.com/ava-labs/avalanche-sdk-go/trace"
)

const (
	jsonRPCVersion = "2.0"
	contentType    = "application/json"
	tracerName     = "requester"
)

var (
	ErrBadStatus = errors.New("received non 2xx status code")

	// requestID is shared by every requester in the process.
	requestID atomic.Uint64
)

type clientRequest struct {
	Version string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      uint64      `json:"id"`
}

// EndpointRequester sends JSON-RPC 2.0 requests for one API namespace to one
// node endpoint.
type EndpointRequester struct {
	cli         *http.Client
	uri         string
	base        string
	headers     http.Header
	queryParams url.Values
	registerer  prometheus.Registerer
	metrics     *metrics
	tracer      trace.Tracer
	log         logging.Logger
}

// New returns a requester that posts to [uri]. Method names are prefixed with
// "[base]." unless [base] is empty.
func New(uri, base string, opts ...Option) *EndpointRequester {
	e := &EndpointRequester{
		cli:         http.DefaultClient,
		uri:         uri,
		base:        base,
		headers:     http.Header{},
		queryParams: url.Values{},
		tracer:      tracing.Noop(tracerName),
		log:         logging.NoLog{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registerer != nil {
		m, err := newMetrics(e.registerer)
		if err != nil {
			e.log.Warn("failed to register requester metrics",
				zap.String("uri", uri),
				zap.Error(err),
			)
		}
		e.metrics = m
	}
	return e
}

func (e *EndpointRequester) URI() string {
	return e.uri
}

// MethodName returns the fully qualified name of [method].
func (e *EndpointRequester) MethodName(method string) string {
	if e.base == "" {
		return method
	}
	return e.base + "." + method
}

// SendRequest calls [method] with [params] and decodes the result into
// [reply]. JSON-RPC errors are returned as *json2.Error.
func (e *EndpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	name := e.MethodName(method)
	ctx, span := e.tracer.Start(ctx, name,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("rpc.system", "jsonrpc"),
			attribute.String("rpc.method", name),
			attribute.String("http.url", e.uri),
		),
	)
	defer span.End()

	start := time.Now()
	err := e.sendRequest(ctx, name, params, reply)
	e.metrics.observe(name, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.log.Debug("request failed",
			zap.String("method", name),
			zap.String("uri", e.uri),
			zap.Error(err),
		)
		return err
	}
	e.log.Debug("request succeeded",
		zap.String("method", name),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func (e *EndpointRequester) sendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	if params == nil {
		params = struct{}{}
	}
	requestBody, err := json.Marshal(clientRequest{
		Version: jsonRPCVersion,
		Method:  method,
		Params:  params,
		ID:      requestID.Inc(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}

	uri, err := url.Parse(e.uri)
	if err != nil {
		return fmt.Errorf("failed to parse uri %q: %w", e.uri, err)
	}
	if len(e.queryParams) > 0 {
		query := uri.Query()
		for k, vs := range e.queryParams {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
		uri.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		uri.String(),
		bytes.NewBuffer(requestBody),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header = e.headers.Clone()
	request.Header.Set("Content-Type", contentType)

	resp, err := e.cli.Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain the body so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	err = json2.DecodeClientResponse(resp.Body, reply)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, json2.ErrNullResult):
		// Methods without a result (admin.aliasChain, ...) reply with null.
		return nil
	default:
		var rpcErr *json2.Error
		if errors.As(err, &rpcErr) {
			return rpcErr
		}
		return fmt.Errorf("failed to decode client response: %w", err)
	}
}
