// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
)

const nodeFlag = "node"

var cb58Cmd = &cobra.Command{
	Use:   "cb58",
	Short: "Convert between hex and CB58",
}

var cb58EncodeCmd = &cobra.Command{
	Use:   "encode [hex]",
	Short: "Encode hex bytes as CB58",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := formatting.DecodeRawHex(args[0])
		if err != nil {
			return fmt.Errorf("failed to decode hex: %w", err)
		}
		encode := formatting.CB58Encode
		if nodeForm, _ := cmd.Flags().GetBool(nodeFlag); nodeForm {
			encode = formatting.NodeCB58Encode
		}
		return printValue(cmd, cb58Response{
			Hex:  codec.ToHex(b),
			CB58: encode(b),
		})
	},
}

var cb58DecodeCmd = &cobra.Command{
	Use:   "decode [cb58]",
	Short: "Decode a CB58 string into hex bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decode := formatting.CB58Decode
		if nodeForm, _ := cmd.Flags().GetBool(nodeFlag); nodeForm {
			decode = formatting.NodeCB58Decode
		}
		b, err := decode(args[0])
		if err != nil {
			return fmt.Errorf("failed to decode cb58: %w", err)
		}
		return printValue(cmd, cb58Response{
			Hex:    codec.ToHex(b),
			CB58:   args[0],
			decode: true,
		})
	},
}

type cb58Response struct {
	Hex  string `json:"hex"`
	CB58 string `json:"cb58"`

	decode bool
}

func (r cb58Response) String() string {
	if r.decode {
		return r.Hex
	}
	return r.CB58
}

func init() {
	cb58Cmd.PersistentFlags().Bool(nodeFlag, false, "Use the checksum nodes append to IDs")
	cb58Cmd.AddCommand(cb58EncodeCmd, cb58DecodeCmd)
	rootCmd.AddCommand(cb58Cmd)
}
