// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var endpointSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the endpoint URL and network",
	RunE: func(cmd *cobra.Command, _ []string) error {
		endpoint, err := cmd.Flags().GetString("endpoint")
		if err != nil {
			return fmt.Errorf("failed to get endpoint flag: %w", err)
		}
		if endpoint == "" {
			return errors.New("endpoint is required")
		}

		if err := setConfigValue("endpoint", endpoint); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}

		network, err := cmd.Flags().GetString("network")
		if err != nil {
			return fmt.Errorf("failed to get network flag: %w", err)
		}
		if network != "" {
			if _, err := parseNetworkID(network); err != nil {
				return err
			}
			if err := setConfigValue("network", network); err != nil {
				return fmt.Errorf("failed to update config: %w", err)
			}
		}

		return printValue(cmd, endpointSetCmdResponse{
			Endpoint: endpoint,
			Network:  network,
		})
	},
}

type endpointSetCmdResponse struct {
	Endpoint string `json:"endpoint"`
	Network  string `json:"network,omitempty"`
}

func (r endpointSetCmdResponse) String() string {
	if r.Network == "" {
		return "Endpoint set to: " + r.Endpoint
	}
	return fmt.Sprintf("Endpoint set to: %s (%s)", r.Endpoint, r.Network)
}

func init() {
	endpointCmd.AddCommand(endpointSetCmd)
}
