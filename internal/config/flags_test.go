// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port", addr: NetAddress{Port: 3000}, expected: ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErr      bool
		expectedAddr NetAddress
	}{
		{name: "localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":3000", expectedAddr: NetAddress{Port: 3000}},
		{name: "missing colon", input: "localhost8080", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "hostname is not an IP", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-request-timeout", "15s",
		"-catalog-url", "http://catalog.local",
		"-catalog-timeout", "2s",
		"-metrics",
		"-config", "/etc/heroes.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://catalog.local", cfg.Catalog.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Catalog.RequestTimeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/etc/heroes.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})

	require.Error(t, err)
}
