// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/api/platform"
	"github.com/ava-labs/avalanche-sdk-go/utils"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address...]",
	Short: "Print the P-Chain balance of addresses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := newContext()
		defer cancel()

		endpoint, err := getEndpoint(cmd)
		if err != nil {
			return fmt.Errorf("failed to get endpoint: %w", err)
		}
		client := platform.NewClient(endpoint, requesterOptions()...)

		reply, err := client.GetBalance(ctx, args)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		return printValue(cmd, balanceResponse{
			Balance:            reply.Balance,
			Unlocked:           reply.Unlocked,
			LockedStakeable:    reply.LockedStakeable,
			LockedNotStakeable: reply.LockedNotStakeable,
			UTXOs:              len(reply.UTXOIDs),
		})
	},
}

type balanceResponse struct {
	Balance            api.BigInt `json:"balance"`
	Unlocked           api.BigInt `json:"unlocked"`
	LockedStakeable    api.BigInt `json:"lockedStakeable"`
	LockedNotStakeable api.BigInt `json:"lockedNotStakeable"`
	UTXOs              int        `json:"utxos"`
}

func (r balanceResponse) String() string {
	return fmt.Sprintf(
		"balance: %s AVAX\nunlocked: %s AVAX\nlocked stakeable: %s AVAX\nlocked not stakeable: %s AVAX\nutxos: %d",
		formatAvax(r.Balance),
		formatAvax(r.Unlocked),
		formatAvax(r.LockedStakeable),
		formatAvax(r.LockedNotStakeable),
		r.UTXOs,
	)
}

// formatAvax renders an nAVAX amount as AVAX, or as raw nAVAX when it does
// not fit in 64 bits.
func formatAvax(n api.BigInt) string {
	v, err := n.Uint64()
	if err != nil {
		return n.String() + " n"
	}
	return utils.FormatBalance(v)
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
