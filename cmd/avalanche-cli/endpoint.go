// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/utils"
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Manage endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		endpoint, err := resolveEndpoint(cmd)
		if err != nil {
			return fmt.Errorf("failed to get endpoint: %w", err)
		}
		response, err := newEndpointCmdResponse(endpoint)
		if err != nil {
			return err
		}
		return printValue(cmd, response)
	},
}

type endpointCmdResponse struct {
	Endpoint string `json:"endpoint"`
	Source   string `json:"source"`
	Network  string `json:"network,omitempty"`
	Host     string `json:"host"`
	Port     string `json:"port"`
}

func newEndpointCmdResponse(endpoint resolvedEndpoint) (endpointCmdResponse, error) {
	host, port, err := endpointAddress(endpoint.URI)
	if err != nil {
		return endpointCmdResponse{}, err
	}
	return endpointCmdResponse{
		Endpoint: endpoint.URI,
		Source:   endpoint.Source,
		Network:  endpoint.Network,
		Host:     host,
		Port:     port,
	}, nil
}

func (r endpointCmdResponse) String() string {
	if r.Network != "" {
		return fmt.Sprintf("%s (public API of %s)", r.Endpoint, r.Network)
	}
	return fmt.Sprintf("%s (from %s)", r.Endpoint, r.Source)
}

// endpointAddress splits [uri] into the host and port requests are sent to.
func endpointAddress(uri string) (string, string, error) {
	host, err := utils.GetHost(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid endpoint: %w", err)
	}
	port, err := utils.GetPort(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid endpoint: %w", err)
	}
	return host, port, nil
}

func hostPort(uri string) string {
	host, port, err := endpointAddress(uri)
	if err != nil {
		return uri
	}
	return net.JoinHostPort(host, port)
}

func init() {
	rootCmd.AddCommand(endpointCmd)
}
