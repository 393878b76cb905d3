// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/ava-labs/avalanchego/utils/perms"
)

var (
	ErrMissingHost = errors.New("missing host")
	ErrMissingPort = errors.New("missing port")
)

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, perms.ReadWriteExecute)
}

// GetHost returns the host of [uri] without its port.
func GetHost(uri string) (string, error) {
	purl, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	host := purl.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w in %q", ErrMissingHost, uri)
	}
	return host, nil
}

// GetPort returns the port of [uri], or the default port of its scheme when
// none is given.
func GetPort(uri string) (string, error) {
	purl, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if port := purl.Port(); port != "" {
		return port, nil
	}
	switch strings.ToLower(purl.Scheme) {
	case "https":
		return "443", nil
	case "http":
		return "80", nil
	default:
		return "", fmt.Errorf("%w in %q", ErrMissingPort, uri)
	}
}
