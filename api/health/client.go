// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const (
	Name     = "health"
	Endpoint = "/ext/health"
)

type Args struct {
	Tags []string `json:"tags,omitempty"`
}

// Result is the outcome of one health check. Message is check specific.
type Result struct {
	Message            json.RawMessage `json:"message,omitempty"`
	Error              *string         `json:"error,omitempty"`
	Timestamp          time.Time       `json:"timestamp"`
	Duration           time.Duration   `json:"duration"`
	ContiguousFailures int64           `json:"contiguousFailures,omitempty"`
	TimeOfFirstFailure *time.Time      `json:"timeOfFirstFailure,omitempty"`
	Healthy            *bool           `json:"healthy,omitempty"`
}

type Reply struct {
	Checks  map[string]Result `json:"checks"`
	Healthy bool              `json:"healthy"`
}

// Failing returns the names of the checks reporting an error.
func (r *Reply) Failing() []string {
	var failing []string
	for name, result := range r.Checks {
		if result.Error != nil || (result.Healthy != nil && !*result.Healthy) {
			failing = append(failing, name)
		}
	}
	return failing
}

// Client calls the health.* API of a node.
type Client struct {
	requester *requester.EndpointRequester
}

func NewClient(uri string, opts ...requester.Option) *Client {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	return &Client{requester: requester.New(uri, Name, opts...)}
}

// Health runs every check, or only the checks carrying one of [tags].
func (c *Client) Health(ctx context.Context, tags []string) (*Reply, error) {
	resp := new(Reply)
	err := c.requester.SendRequest(ctx, "health", &Args{Tags: tags}, resp)
	return resp, err
}

func (c *Client) Liveness(ctx context.Context) (*Reply, error) {
	resp := new(Reply)
	err := c.requester.SendRequest(ctx, "liveness", nil, resp)
	return resp, err
}

func (c *Client) Readiness(ctx context.Context, tags []string) (*Reply, error) {
	resp := new(Reply)
	err := c.requester.SendRequest(ctx, "readiness", &Args{Tags: tags}, resp)
	return resp, err
}
