// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package apitest serves fake node APIs for client tests.
package apitest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/api"
)

// Service is a gorilla/rpc service registered under Name at Path.
type Service struct {
	Path    string
	Name    string
	Service interface{}
}

// NewServer starts a server exposing every service and returns its base URI.
// The server is closed when the test ends.
func NewServer(t testing.TB, services ...Service) string {
	handlers := make([]api.Handler, 0, len(services))
	for _, s := range services {
		handler, err := api.NewJSONRPCHandler(s.Name, s.Service)
		require.NoError(t, err)
		handlers = append(handlers, api.Handler{
			Path:    s.Path,
			Handler: handler,
		})
	}
	server := httptest.NewServer(api.NewMux(handlers...))
	t.Cleanup(server.Close)
	return server.URL
}
