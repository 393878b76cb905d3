// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tracing "github.com/ava-labs/avalanche-sdk-go/trace"
)

const appName = "avalanche-cli"

var (
	log    logging.Logger = logging.NoLog{}
	tracer trace.Tracer   = tracing.Noop(appName)

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "Avalanche CLI for interacting with the primary network",
		Long:  `A CLI application for querying Avalanche nodes and encoding, decoding and tracking primary network transactions.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			l, err := newLogger(cmd)
			if err != nil {
				return err
			}
			log = l
			t, err := newTracer(cmd)
			if err != nil {
				return err
			}
			tracer = t
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if err := tracer.Close(); err != nil {
				log.Warn("failed to flush traces", zap.Error(err))
			}
			log.Stop()
		},
		SilenceUsage: true,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json or yaml (default text)")
	rootCmd.PersistentFlags().String("endpoint", "", "Override the default endpoint")
	rootCmd.PersistentFlags().String("network", "", "Network name or ID (mainnet, fuji, local)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (default warn)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this rotated file")
	rootCmd.PersistentFlags().String("trace-endpoint", "", "Export request spans to this zipkin collector")
}

func newTracer(cmd *cobra.Command) (trace.Tracer, error) {
	endpoint, err := getConfigValue(cmd, "trace-endpoint", false)
	if err != nil {
		return nil, err
	}
	config := tracing.DefaultConfig()
	config.Enabled = endpoint != ""
	config.Endpoint = endpoint
	config.AppName = appName
	return tracing.New(config)
}

func main() {
	Execute()
}
