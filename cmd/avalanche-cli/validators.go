// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/avalanche-sdk-go/api/platform"
)

var validatorsCmd = &cobra.Command{
	Use:   "validators [nodeID...]",
	Short: "List the current validators of a subnet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := newContext()
		defer cancel()

		subnetID, err := cmd.Flags().GetString("subnet")
		if err != nil {
			return err
		}
		endpoint, err := getEndpoint(cmd)
		if err != nil {
			return fmt.Errorf("failed to get endpoint: %w", err)
		}
		client := platform.NewClient(endpoint, requesterOptions()...)

		validators, err := client.GetCurrentValidators(ctx, subnetID, args)
		if err != nil {
			return fmt.Errorf("failed to get validators: %w", err)
		}
		slices.SortFunc(validators, func(a, b platform.Validator) int {
			// Heaviest first.
			return b.Weight.Cmp(a.Weight)
		})
		return printValue(cmd, validatorsResponse{Validators: validators})
	},
}

type validatorsResponse struct {
	Validators []platform.Validator `json:"validators"`
}

func (r validatorsResponse) String() string {
	lines := make([]string, 0, len(r.Validators)+1)
	lines = append(lines, fmt.Sprintf("%d validators:", len(r.Validators)))
	for _, v := range r.Validators {
		lines = append(lines, fmt.Sprintf("%s weight=%s start=%d end=%d connected=%t",
			v.NodeID,
			v.Weight,
			v.StartTime,
			v.EndTime,
			v.Connected,
		))
	}
	return strings.Join(lines, "\n")
}

func init() {
	validatorsCmd.Flags().String("subnet", "", "Subnet ID (default primary network)")
	rootCmd.AddCommand(validatorsCmd)
}
