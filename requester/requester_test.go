// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/api"
)

type EchoArgs struct {
	Message string `json:"message"`
}

type EchoReply struct {
	Message string `json:"message"`
}

type EchoService struct{}

func (*EchoService) Echo(_ *http.Request, args *EchoArgs, reply *EchoReply) error {
	reply.Message = args.Message
	return nil
}

func (*EchoService) Fail(_ *http.Request, _ *EchoArgs, _ *EchoReply) error {
	return errors.New("boom")
}

func newEchoServer(t *testing.T) *httptest.Server {
	handler, err := api.NewJSONRPCHandler("echo", &EchoService{})
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestSendRequest(t *testing.T) {
	require := require.New(t)

	server := newEchoServer(t)
	r := New(server.URL, "echo")

	var reply EchoReply
	require.NoError(r.SendRequest(context.Background(), "echo", &EchoArgs{Message: "hello"}, &reply))
	require.Equal("hello", reply.Message)
}

func TestSendRequestRPCError(t *testing.T) {
	require := require.New(t)

	server := newEchoServer(t)
	r := New(server.URL, "echo")

	var reply EchoReply
	err := r.SendRequest(context.Background(), "fail", &EchoArgs{}, &reply)
	var rpcErr *json2.Error
	require.ErrorAs(err, &rpcErr)
	require.Equal("boom", rpcErr.Message)
}

func TestMethodName(t *testing.T) {
	tests := []struct {
		base     string
		method   string
		expected string
	}{
		{
			base:     "platform",
			method:   "getHeight",
			expected: "platform.getHeight",
		},
		{
			base:     "",
			method:   "eth_chainId",
			expected: "eth_chainId",
		},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, New("http://localhost", tt.base).MethodName(tt.method))
		})
	}
}

type seenRequest struct {
	header http.Header
	query  url.Values
	body   []byte
}

// rawServer replies to every request with [status] and [body] and records
// the last request it saw.
func rawServer(t *testing.T, status int, body string, seen *seenRequest) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen.header = r.Header.Clone()
			seen.query = r.URL.Query()
			seen.body, _ = io.ReadAll(r.Body)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSendRequestResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{
			name:   "null result",
			status: http.StatusOK,
			body:   `{"jsonrpc":"2.0","result":null,"id":1}`,
		},
		{
			name:        "bad status",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			expectedErr: ErrBadStatus,
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        ``,
			expectedErr: ErrBadStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := rawServer(t, tt.status, tt.body, nil)
			var reply EchoReply
			err := New(server.URL, "echo").SendRequest(context.Background(), "echo", nil, &reply)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestSendRequestMalformedResponse(t *testing.T) {
	require := require.New(t)

	server := rawServer(t, http.StatusOK, `not json`, nil)
	var reply EchoReply
	err := New(server.URL, "echo").SendRequest(context.Background(), "echo", nil, &reply)
	require.Error(err)
	var rpcErr *json2.Error
	require.False(errors.As(err, &rpcErr))
}

func TestSendRequestHeadersAndQuery(t *testing.T) {
	require := require.New(t)

	var seen seenRequest
	server := rawServer(t, http.StatusOK, `{"jsonrpc":"2.0","result":{"message":"ok"},"id":1}`, &seen)
	r := New(
		server.URL,
		"echo",
		WithHeader("X-Api-Key", "secret"),
		WithQueryParam("token", "abc"),
	)

	var reply EchoReply
	require.NoError(r.SendRequest(context.Background(), "echo", nil, &reply))
	require.Equal("ok", reply.Message)
	require.Equal("secret", seen.header.Get("X-Api-Key"))
	require.Equal("abc", seen.query.Get("token"))
	require.Equal(contentType, seen.header.Get("Content-Type"))

	var req struct {
		Version string          `json:"jsonrpc"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	require.NoError(json.Unmarshal(seen.body, &req))
	require.Equal(jsonRPCVersion, req.Version)
	require.Equal("echo.echo", req.Method)
	require.JSONEq(`{}`, string(req.Params))
}

func TestSendRequestCanceled(t *testing.T) {
	require := require.New(t)

	server := newEchoServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var reply EchoReply
	err := New(server.URL, "echo").SendRequest(ctx, "echo", &EchoArgs{}, &reply)
	require.ErrorIs(err, context.Canceled)
}

func TestMetrics(t *testing.T) {
	require := require.New(t)

	server := newEchoServer(t)
	registry := prometheus.NewRegistry()
	r := New(server.URL, "echo", WithRegisterer(registry))
	// A second requester on the same registry reuses the collectors.
	r2 := New(server.URL, "echo", WithRegisterer(registry))
	require.NotNil(r.metrics)
	require.NotNil(r2.metrics)

	var reply EchoReply
	require.NoError(r.SendRequest(context.Background(), "echo", &EchoArgs{}, &reply))
	require.NoError(r2.SendRequest(context.Background(), "echo", &EchoArgs{}, &reply))
	require.Error(r.SendRequest(context.Background(), "fail", &EchoArgs{}, &reply))

	require.Equal(2.0, testutil.ToFloat64(r.metrics.requests.WithLabelValues("echo.echo")))
	require.Equal(1.0, testutil.ToFloat64(r.metrics.requests.WithLabelValues("echo.fail")))
	require.Equal(1.0, testutil.ToFloat64(r.metrics.errors.WithLabelValues("echo.fail")))
	require.Equal(0.0, testutil.ToFloat64(r.metrics.errors.WithLabelValues("echo.echo")))
}

type bufferCloser struct {
	*bytes.Buffer
}

func (bufferCloser) Close() error {
	return nil
}

func TestMetricsRegistrationFailure(t *testing.T) {
	require := require.New(t)

	server := newEchoServer(t)
	registry := prometheus.NewRegistry()
	require.NoError(registry.Register(prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "conflicting collector",
	})))

	var buf bytes.Buffer
	log := logging.NewLogger("", logging.NewWrappedCore(logging.Info, bufferCloser{&buf}, logging.Plain.ConsoleEncoder()))

	// The registerer comes before the logger and the failure is still logged.
	r := New(server.URL, "echo", WithRegisterer(registry), WithLogger(log))
	require.Nil(r.metrics)
	require.Contains(buf.String(), "failed to register requester metrics")
	require.Contains(buf.String(), "requests_total")

	var reply EchoReply
	require.NoError(r.SendRequest(context.Background(), "echo", &EchoArgs{Message: "hi"}, &reply))
	require.Equal("hi", reply.Message)
}

func TestMetricsOptionOrder(t *testing.T) {
	require := require.New(t)

	server := newEchoServer(t)
	registry := prometheus.NewRegistry()
	r := New(server.URL, "echo", WithRegisterer(registry), WithLogger(logging.NoLog{}))
	require.NotNil(r.metrics)

	var reply EchoReply
	require.NoError(r.SendRequest(context.Background(), "echo", &EchoArgs{}, &reply))
	require.Equal(1.0, testutil.ToFloat64(r.metrics.requests.WithLabelValues("echo.echo")))
}
