// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args (normally
// os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g. "30s")
//	-catalog-url remote catalog base URL
//	-catalog-timeout remote catalog call timeout (e.g. "10s")
//	-metrics enable Prometheus metrics
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var catalogURL string
	var catalogTimeout time.Duration
	var metricsEnabled bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("hero-gateway", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.StringVar(&catalogURL, "catalog-url", "", "Remote hero catalog base URL")
	fs.DurationVar(&catalogTimeout, "catalog-timeout", 0, "Remote hero catalog call timeout (e.g., 10s)")
	fs.BoolVar(&metricsEnabled, "metrics", false, "Enable Prometheus metrics")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Catalog: Catalog{
			BaseURL:        catalogURL,
			RequestTimeout: catalogTimeout,
		},
		Metrics: Metrics{
			Enabled: metricsEnabled,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; otherwise the host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
