// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/avalanche-sdk-go/api/health"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the endpoint is live",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := newContext()
		defer cancel()

		endpoint, err := getEndpoint(cmd)
		if err != nil {
			return fmt.Errorf("failed to get endpoint: %w", err)
		}
		client := health.NewClient(endpoint, requesterOptions()...)

		reply, err := client.Liveness(ctx)
		if err != nil {
			return fmt.Errorf("failed to ping: %w", err)
		}
		failing := reply.Failing()
		slices.Sort(failing)
		return printValue(cmd, pingResponse{
			Address: hostPort(endpoint),
			Success: reply.Healthy,
			Failing: failing,
		})
	},
}

type pingResponse struct {
	Address string   `json:"address"`
	Success bool     `json:"success"`
	Failing []string `json:"failing,omitempty"`
}

func (r pingResponse) String() string {
	if r.Success {
		return "✅ Ping succeeded: " + r.Address
	}
	return "❌ Ping failed: " + r.Address + ": " + strings.Join(r.Failing, ", ")
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
