// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/api/info"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print information about the node",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := newContext()
		defer cancel()

		endpoint, err := getEndpoint(cmd)
		if err != nil {
			return fmt.Errorf("failed to get endpoint: %w", err)
		}
		client := info.NewClient(endpoint, requesterOptions()...)

		version, err := client.GetNodeVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to get node version: %w", err)
		}
		nodeID, err := client.GetNodeID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get node id: %w", err)
		}
		networkID, err := client.GetNetworkID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get network id: %w", err)
		}
		networkName, err := client.GetNetworkName(ctx)
		if err != nil {
			return fmt.Errorf("failed to get network name: %w", err)
		}

		resp := infoResponse{
			Version:      version.Version,
			NodeID:       nodeID.NodeID,
			NetworkID:    networkID,
			NetworkName:  networkName,
			Bootstrapped: make(map[string]bool),
		}
		for _, chain := range []string{consts.PChainAlias, consts.XChainAlias, consts.CChainAlias} {
			bootstrapped, err := client.IsBootstrapped(ctx, chain)
			if err != nil {
				return fmt.Errorf("failed to check %s-Chain bootstrap: %w", chain, err)
			}
			resp.Bootstrapped[chain] = bootstrapped
		}
		return printValue(cmd, resp)
	},
}

type infoResponse struct {
	Version      string          `json:"version"`
	NodeID       string          `json:"nodeID"`
	NetworkID    uint32          `json:"networkID"`
	NetworkName  string          `json:"networkName"`
	Bootstrapped map[string]bool `json:"bootstrapped"`
}

func (r infoResponse) String() string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("version: %s\n", r.Version))
	result.WriteString(fmt.Sprintf("node: %s\n", r.NodeID))
	result.WriteString(fmt.Sprintf("network: %s (%d)\n", r.NetworkName, r.NetworkID))
	for _, chain := range []string{consts.PChainAlias, consts.XChainAlias, consts.CChainAlias} {
		result.WriteString(fmt.Sprintf("%s-Chain bootstrapped: %t\n", chain, r.Bootstrapped[chain]))
	}
	return strings.TrimSuffix(result.String(), "\n")
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
