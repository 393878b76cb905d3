// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
)

// Handler serves one node API namespace at [Path], e.g. "/ext/bc/P".
type Handler struct {
	Path    string
	Handler http.Handler
}

// NewJSONRPCHandler serves the exported methods of [service] under the
// namespace [name] using the node's JSON-RPC codec. Method names are matched
// the way the node matches them, so "platform.getHeight" reaches
// GetHeight.
func NewJSONRPCHandler(
	name string,
	service interface{},
) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	return server, server.RegisterService(service, name)
}

// NewMux routes every handler by its path.
func NewMux(handlers ...Handler) *http.ServeMux {
	mux := http.NewServeMux()
	for _, h := range handlers {
		mux.Handle(h.Path, h.Handler)
	}
	return mux
}
