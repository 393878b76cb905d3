// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogLevel = "warn"

	logMaxSize  = 8 // megabytes
	logMaxAge   = 7 // days
	logMaxFiles = 3
)

func newLogger(cmd *cobra.Command) (logging.Logger, error) {
	levelStr, err := getConfigValue(cmd, "log-level", false)
	if err != nil {
		return nil, err
	}
	if levelStr == "" {
		levelStr = defaultLogLevel
	}
	level, err := logging.ToLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, os.Stderr, logging.Colors.ConsoleEncoder()),
	}

	logFile, err := getConfigValue(cmd, "log-file", false)
	if err != nil {
		return nil, err
	}
	if logFile != "" {
		rw := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logMaxSize,
			MaxAge:     logMaxAge,
			MaxBackups: logMaxFiles,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(level, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger("", cores...), nil
}
