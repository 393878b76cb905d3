// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
	"github.com/ava-labs/avalanche-sdk-go/utils"
)

const configDirName = ".avalanche-cli"

var (
	errUnknownNetwork = errors.New("unknown network")
	errUnknownOutput  = errors.New("unknown output format")
)

func initConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir, err := utils.InitSubDirectory(homeDir, configDirName)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, nil, perms.ReadWrite); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	output, err := getConfigValue(cmd, "output", false)
	if err != nil {
		return fmt.Errorf("failed to get output format: %w", err)
	}

	switch strings.ToLower(output) {
	case "", "text":
		fmt.Println(v.String())
		return nil
	case "json":
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	case "yaml":
		yamlBytes, err := toYAML(v)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(yamlBytes))
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, output)
	}
}

// toYAML renders [v] through its JSON form so that field names and the
// MarshalText encodings of IDs match the json output.
func toYAML(v interface{}) ([]byte, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic yaml.MapSlice
	if err := yaml.Unmarshal(jsonBytes, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	// Check flags first
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value, nil
	}

	// Then check viper
	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}

	return "", nil
}

func setConfigValue(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// parseNetworkID accepts a well known network name or a numeric ID. The empty
// string selects mainnet.
func parseNetworkID(network string) (uint32, error) {
	switch strings.ToLower(network) {
	case "", "mainnet":
		return consts.MainnetID, nil
	case "fuji", "testnet":
		return consts.FujiID, nil
	case "local":
		return consts.LocalID, nil
	}
	id, err := strconv.ParseUint(network, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errUnknownNetwork, network)
	}
	return uint32(id), nil
}

func getNetworkID(cmd *cobra.Command) (uint32, error) {
	network, err := getConfigValue(cmd, "network", false)
	if err != nil {
		return 0, err
	}
	return parseNetworkID(network)
}

// Where an endpoint was found.
const (
	endpointFromFlag    = "flag"
	endpointFromConfig  = "config"
	endpointFromNetwork = "network"
)

// resolvedEndpoint is an endpoint together with where it came from. Network
// is only set when the endpoint is the public API of the configured network.
type resolvedEndpoint struct {
	URI     string
	Source  string
	Network string
}

// resolveEndpoint returns the --endpoint flag, then the configured endpoint,
// then the public API of the configured network.
func resolveEndpoint(cmd *cobra.Command) (resolvedEndpoint, error) {
	if value, err := cmd.Flags().GetString("endpoint"); err == nil && value != "" {
		return resolvedEndpoint{URI: value, Source: endpointFromFlag}, nil
	}
	if value := viper.GetString("endpoint"); value != "" {
		return resolvedEndpoint{URI: value, Source: endpointFromConfig}, nil
	}
	networkID, err := getNetworkID(cmd)
	if err != nil {
		return resolvedEndpoint{}, err
	}
	uri, err := publicAPI(networkID)
	if err != nil {
		return resolvedEndpoint{}, err
	}
	return resolvedEndpoint{
		URI:     uri,
		Source:  endpointFromNetwork,
		Network: networkName(networkID),
	}, nil
}

func publicAPI(networkID uint32) (string, error) {
	switch networkID {
	case consts.MainnetID:
		return consts.MainnetAPI, nil
	case consts.FujiID:
		return consts.FujiAPI, nil
	case consts.LocalID:
		return consts.LocalAPI, nil
	default:
		return "", fmt.Errorf("required value for endpoint not found for network %d", networkID)
	}
}

func networkName(networkID uint32) string {
	switch networkID {
	case consts.MainnetID:
		return "mainnet"
	case consts.FujiID:
		return "fuji"
	case consts.LocalID:
		return "local"
	default:
		return strconv.FormatUint(uint64(networkID), 10)
	}
}

func getEndpoint(cmd *cobra.Command) (string, error) {
	endpoint, err := resolveEndpoint(cmd)
	return endpoint.URI, err
}

func decodeFileOrHex(fileNameOrHex string) ([]byte, error) {
	if decoded, err := formatting.DecodeRawHex(fileNameOrHex); err == nil {
		return decoded, nil
	}

	if fileContents, err := os.ReadFile(fileNameOrHex); err == nil {
		if decoded, err := formatting.DecodeRawHex(strings.TrimSpace(string(fileContents))); err == nil {
			return decoded, nil
		}
		return fileContents, nil
	}

	return nil, errors.New("unable to decode input as hex, or read as file path")
}

// parseWithChecksum parses [b], retrying without the trailing checksum node
// replies carry.
func parseWithChecksum[T any](b []byte, parse func([]byte) (T, error)) (T, error) {
	v, err := parse(b)
	if err == nil {
		return v, nil
	}
	if stripped, checksumErr := formatting.RemoveChecksum(b); checksumErr == nil {
		return parse(stripped)
	}
	return v, err
}
