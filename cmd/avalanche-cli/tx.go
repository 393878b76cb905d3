// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/txs"
	"github.com/ava-labs/avalanche-sdk-go/wallet"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Decode and track transactions",
}

var txDecodeCmd = &cobra.Command{
	Use:   "decode [hex or file]",
	Short: "Decode a signed transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := decodeFileOrHex(args[0])
		if err != nil {
			return err
		}
		tx, err := parseWithChecksum(b, txs.ParseSignedTx)
		if err != nil {
			return fmt.Errorf("failed to parse transaction: %w", err)
		}
		txID, err := tx.ID()
		if err != nil {
			return fmt.Errorf("failed to compute transaction id: %w", err)
		}
		return printValue(cmd, txDecodeResponse{
			TxID: txID,
			Tx:   tx,
		})
	},
}

var txStatusCmd = &cobra.Command{
	Use:   "status [txID]",
	Short: "Print the status of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := newContext()
		defer cancel()

		checker, err := txStatusChecker(cmd)
		if err != nil {
			return err
		}
		status, err := checker.TxStatus(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return printValue(cmd, txStatusResponse{
			TxID:   args[0],
			Status: status,
		})
	},
}

var txWaitCmd = &cobra.Command{
	Use:   "wait [txID]",
	Short: "Wait until a transaction is decided",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := newContext()
		defer cancel()

		checker, err := txStatusChecker(cmd)
		if err != nil {
			return err
		}
		interval, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			return err
		}
		retries, err := cmd.Flags().GetInt("retries")
		if err != nil {
			return err
		}

		start := time.Now()
		err = wallet.WaitForTx(
			ctx,
			checker,
			args[0],
			wallet.WithInterval(interval),
			wallet.WithMaxRetries(retries),
			wallet.WithLogger(log),
		)
		if err != nil {
			return err
		}
		return printValue(cmd, txWaitResponse{
			TxID:     args[0],
			Duration: time.Since(start).Round(time.Millisecond).String(),
		})
	},
}

func txStatusChecker(cmd *cobra.Command) (wallet.StatusChecker, error) {
	chain, err := cmd.Flags().GetString("chain")
	if err != nil {
		return nil, err
	}
	return statusChecker(cmd, strings.ToUpper(chain))
}

type txDecodeResponse struct {
	TxID codec.ID      `json:"txID"`
	Tx   *txs.SignedTx `json:"tx"`
}

func (r txDecodeResponse) String() string {
	base := r.Tx.Unsigned.Base()
	var result strings.Builder
	result.WriteString(fmt.Sprintf("txID: %s\n", r.TxID))
	result.WriteString(fmt.Sprintf("type: %d\n", r.Tx.Unsigned.TypeID()))
	result.WriteString(fmt.Sprintf("network: %d\n", base.NetworkID))
	result.WriteString(fmt.Sprintf("blockchain: %s\n", base.BlockchainID))
	result.WriteString(fmt.Sprintf("inputs: %d\n", len(base.Ins)))
	result.WriteString(fmt.Sprintf("outputs: %d\n", len(base.Outs)))
	result.WriteString(fmt.Sprintf("credentials: %d", len(r.Tx.Creds)))
	return result.String()
}

type txStatusResponse struct {
	TxID   string     `json:"txID"`
	Status api.Status `json:"status"`
}

func (r txStatusResponse) String() string {
	return fmt.Sprintf("%s: %s", r.TxID, r.Status)
}

type txWaitResponse struct {
	TxID     string `json:"txID"`
	Duration string `json:"duration"`
}

func (r txWaitResponse) String() string {
	return fmt.Sprintf("✅ Transaction %s accepted after %s", r.TxID, r.Duration)
}

func init() {
	for _, c := range []*cobra.Command{txStatusCmd, txWaitCmd} {
		c.Flags().String("chain", consts.PChainAlias, "Chain of the transaction (P, X or C)")
	}
	txWaitCmd.Flags().Duration("interval", wallet.DefaultPollInterval, "Time between two status polls")
	txWaitCmd.Flags().Int("retries", wallet.DefaultMaxRetries, "Number of polls before giving up")

	txCmd.AddCommand(txDecodeCmd, txStatusCmd, txWaitCmd)
	rootCmd.AddCommand(txCmd)
}
