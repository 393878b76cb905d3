// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Parse and format bech32 addresses",
}

var addressParseCmd = &cobra.Command{
	Use:   "parse [address]",
	Short: "Print the chain, hrp and payload of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, hrp, payload, err := formatting.ParseAddress(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse address: %w", err)
		}
		return printValue(cmd, addressResponse{
			Address: args[0],
			Chain:   chain,
			HRP:     hrp,
			Payload: codec.ToHex(payload),
		})
	},
}

var addressFormatCmd = &cobra.Command{
	Use:   "format [hex payload]",
	Short: "Format a payload as a chain qualified address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := formatting.DecodeRawHex(args[0])
		if err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		chain, err := cmd.Flags().GetString("chain")
		if err != nil {
			return fmt.Errorf("failed to get chain flag: %w", err)
		}
		networkID, err := getNetworkID(cmd)
		if err != nil {
			return err
		}
		hrp := formatting.HRPForNetwork(networkID)
		addr, err := formatting.FormatAddress(chain, hrp, payload)
		if err != nil {
			return fmt.Errorf("failed to format address: %w", err)
		}
		return printValue(cmd, addressResponse{
			Address: addr,
			Chain:   chain,
			HRP:     hrp,
			Payload: codec.ToHex(payload),
		})
	},
}

type addressResponse struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
	HRP     string `json:"hrp"`
	Payload string `json:"payload"`
}

func (r addressResponse) String() string {
	return fmt.Sprintf("%s\nchain: %s\nhrp: %s\npayload: %s", r.Address, r.Chain, r.HRP, r.Payload)
}

func init() {
	addressFormatCmd.Flags().String("chain", consts.PChainAlias, "Chain alias prefix (P, X or C)")
	addressCmd.AddCommand(addressParseCmd, addressFormatCmd)
	rootCmd.AddCommand(addressCmd)
}
