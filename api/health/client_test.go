// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/api/apitest"
)

const checksReply = `{
	"healthy": false,
	"checks": {
		"C": {
			"message": {"engine": {"consensus": {"outstandingBlocks": 0}}},
			"timestamp": "2024-01-01T00:00:00Z",
			"duration": 10,
			"contiguousFailures": 0,
			"timeOfFirstFailure": null
		},
		"network": {
			"message": {"connectedPeers": 0},
			"error": "not connected to a minimum of 1 peer(s)",
			"timestamp": "2024-01-01T00:00:00Z",
			"duration": 20,
			"contiguousFailures": 3,
			"timeOfFirstFailure": "2023-12-31T23:59:00Z"
		}
	}
}`

type HealthService struct {
	tags []string
}

func (s *HealthService) Health(_ *http.Request, args *Args, reply *json.RawMessage) error {
	s.tags = args.Tags
	*reply = json.RawMessage(checksReply)
	return nil
}

func (*HealthService) Liveness(_ *http.Request, _ *struct{}, reply *json.RawMessage) error {
	*reply = json.RawMessage(`{"healthy": true, "checks": {}}`)
	return nil
}

func (s *HealthService) Readiness(_ *http.Request, args *Args, reply *json.RawMessage) error {
	s.tags = args.Tags
	*reply = json.RawMessage(`{
		"healthy": true,
		"checks": {
			"P": {
				"message": {"timestamp": "2024-01-01T00:00:00Z", "duration": 10, "contiguousFailures": 0, "timeOfFirstFailure": null},
				"healthy": true
			}
		}
	}`)
	return nil
}

func newTestClient(t *testing.T) (*Client, *HealthService) {
	service := &HealthService{}
	uri := apitest.NewServer(t, apitest.Service{
		Path:    Endpoint,
		Name:    Name,
		Service: service,
	})
	return NewClient(uri), service
}

func TestHealth(t *testing.T) {
	require := require.New(t)
	client, service := newTestClient(t)

	reply, err := client.Health(context.Background(), []string{"11111111111111111111111111111111LpoYY"})
	require.NoError(err)
	require.Equal([]string{"11111111111111111111111111111111LpoYY"}, service.tags)
	require.False(reply.Healthy)
	require.Len(reply.Checks, 2)

	network := reply.Checks["network"]
	require.NotNil(network.Error)
	require.Equal(int64(3), network.ContiguousFailures)
	require.NotNil(network.TimeOfFirstFailure)
	require.Equal(time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), network.TimeOfFirstFailure.UTC())
	require.JSONEq(`{"connectedPeers": 0}`, string(network.Message))

	c := reply.Checks["C"]
	require.Nil(c.Error)
	require.Nil(c.TimeOfFirstFailure)
	require.Equal(10*time.Nanosecond, c.Duration)

	require.Equal([]string{"network"}, reply.Failing())
}

func TestLivenessAndReadiness(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	client, service := newTestClient(t)

	reply, err := client.Liveness(ctx)
	require.NoError(err)
	require.True(reply.Healthy)
	require.Empty(reply.Checks)
	require.Empty(reply.Failing())

	reply, err = client.Readiness(ctx, nil)
	require.NoError(err)
	require.Empty(service.tags)
	require.True(reply.Healthy)

	p := reply.Checks["P"]
	require.NotNil(p.Healthy)
	require.True(*p.Healthy)
	require.Empty(reply.Failing())
}
