// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/txs"
	"github.com/ava-labs/avalanche-sdk-go/utils"
	"github.com/ava-labs/avalanche-sdk-go/wallet"
)

var utxoCmd = &cobra.Command{
	Use:   "utxo",
	Short: "Decode, build and list UTXOs",
}

var utxoDecodeCmd = &cobra.Command{
	Use:   "decode [hex or file]",
	Short: "Decode a UTXO",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := decodeFileOrHex(args[0])
		if err != nil {
			return err
		}
		utxo, err := parseWithChecksum(b, txs.ParseUTXO)
		if err != nil {
			return fmt.Errorf("failed to parse utxo: %w", err)
		}
		return printValue(cmd, utxoResponse{UTXO: utxo})
	},
}

var utxoBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the hex encoding of a transfer UTXO",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		params := &wallet.UTXOParams{}
		var err error
		if params.TxID, err = flags.GetString("tx-id"); err != nil {
			return err
		}
		if params.OutputIndex, err = flags.GetUint32("output-index"); err != nil {
			return err
		}
		if params.AssetID, err = flags.GetString("asset-id"); err != nil {
			return err
		}
		if params.Amount, err = flags.GetString("amount"); err != nil {
			return err
		}
		if params.Locktime, err = flags.GetUint64("locktime"); err != nil {
			return err
		}
		if params.Threshold, err = flags.GetUint32("threshold"); err != nil {
			return err
		}
		if params.Addresses, err = flags.GetStringSlice("addresses"); err != nil {
			return err
		}
		if params.StakeableLocktime, err = flags.GetUint64("stakeable-locktime"); err != nil {
			return err
		}

		utxoHex, err := wallet.BuildUTXOBytes(params)
		if err != nil {
			return fmt.Errorf("failed to build utxo: %w", err)
		}
		return printValue(cmd, utxoBuildResponse{UTXO: utxoHex})
	},
}

var utxoListCmd = &cobra.Command{
	Use:   "list [address...]",
	Short: "List the UTXOs owned by addresses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := newContext()
		defer cancel()

		chain, err := cmd.Flags().GetString("chain")
		if err != nil {
			return err
		}
		sourceChain, err := cmd.Flags().GetString("source-chain")
		if err != nil {
			return err
		}
		fetcher, err := utxoFetcher(cmd, chain)
		if err != nil {
			return err
		}

		utxos, err := wallet.GetUTXOsForAddressSet(
			ctx,
			fetcher,
			args,
			wallet.WithSourceChain(sourceChain),
			wallet.WithUTXOLogger(log),
		)
		if err != nil {
			return fmt.Errorf("failed to fetch utxos: %w", err)
		}
		return printValue(cmd, utxoListResponse{UTXOs: utxos})
	},
}

type utxoResponse struct {
	UTXO *txs.UTXO `json:"utxo"`
}

func (r utxoResponse) String() string {
	return formatUTXO(r.UTXO)
}

type utxoBuildResponse struct {
	UTXO string `json:"utxo"`
}

func (r utxoBuildResponse) String() string {
	return r.UTXO
}

type utxoListResponse struct {
	UTXOs []*txs.UTXO `json:"utxos"`
}

func (r utxoListResponse) String() string {
	if len(r.UTXOs) == 0 {
		return "No UTXOs found"
	}
	lines := make([]string, 0, len(r.UTXOs)+1)
	lines = append(lines, fmt.Sprintf("Found %d UTXOs:", len(r.UTXOs)))
	for _, utxo := range r.UTXOs {
		lines = append(lines, formatUTXO(utxo))
	}
	return strings.Join(lines, "\n")
}

func formatUTXO(utxo *txs.UTXO) string {
	out := utxo.Out
	locked := ""
	if lock, ok := out.(*txs.StakeableLockOut); ok {
		locked = fmt.Sprintf(" (stakeable until %d)", lock.Locktime)
		out = lock.TransferableOut
	}
	return fmt.Sprintf("%s asset=%s amount=%s%s",
		utxo.UTXOID,
		utxo.Asset,
		utils.FormatBalance(out.Amount()),
		locked,
	)
}

func init() {
	flags := utxoBuildCmd.Flags()
	flags.String("tx-id", "", "CB58 ID of the transaction that produced the UTXO")
	flags.Uint32("output-index", 0, "Index of the output in the transaction")
	flags.String("asset-id", "", "CB58 asset ID")
	flags.String("amount", "", "Amount in the asset's smallest unit")
	flags.Uint64("locktime", 0, "Unix time before which the output cannot be spent")
	flags.Uint32("threshold", 1, "Number of signatures required to spend")
	flags.StringSlice("addresses", nil, "Owner addresses")
	flags.Uint64("stakeable-locktime", 0, "Wrap the output in a stakeable lock until this unix time")
	for _, name := range []string{"tx-id", "asset-id", "amount", "addresses"} {
		if err := utxoBuildCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	utxoListCmd.Flags().String("chain", consts.PChainAlias, "Chain to query (P, X or C)")
	utxoListCmd.Flags().String("source-chain", "", "List UTXOs exported from this chain")

	utxoCmd.AddCommand(utxoDecodeCmd, utxoBuildCmd, utxoListCmd)
	rootCmd.AddCommand(utxoCmd)
}
