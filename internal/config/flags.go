// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/urfave/cli/v3"
)

// Flag names shared by the server commands.
const (
	FlagConfig      = "config"
	FlagEnvFile     = "env-file"
	FlagAddress     = "address"
	FlagDatabaseURL = "database-url"
	FlagLogLevel    = "log-level"
)

// Flags returns the CLI flags that override configuration values.
//
// Flags:
//
//	-c/--config        JSON or YAML config file
//	--env-file         dotenv file read for keys missing from the environment
//	-a/--address       HTTP listen address in format [host]:port
//	-d/--database-url  database URL
//	--log-level        trace, debug, info, warn or error
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "JSON or YAML config file",
		},
		&cli.StringFlag{
			Name:  FlagEnvFile,
			Value: ".env",
			Usage: "dotenv file read for keys missing from the environment",
		},
		&cli.StringFlag{
			Name:    FlagAddress,
			Aliases: []string{"a"},
			Usage:   "HTTP listen address in format [host]:port",
		},
		&cli.StringFlag{
			Name:    FlagDatabaseURL,
			Aliases: []string{"d"},
			Usage:   "database URL",
		},
		&cli.StringFlag{
			Name:  FlagLogLevel,
			Usage: "log level (trace, debug, info, warn, error)",
		},
	}
}

// OverridesFromCommand converts the parsed flags of cmd into the highest
// priority configuration layer.
func OverridesFromCommand(cmd *cli.Command) (*StructuredConfig, error) {
	address := cmd.String(FlagAddress)
	if address != "" {
		var netAddress NetAddress
		if err := netAddress.Set(address); err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", FlagAddress, err)
		}
		address = netAddress.String()
	}

	return &StructuredConfig{
		Storage:  Storage{DB: DB{DSN: cmd.String(FlagDatabaseURL)}},
		Server:   Server{HTTPAddress: address},
		Logging:  Logging{Level: cmd.String(FlagLogLevel)},
		FilePath: cmd.String(FlagConfig),
	}, nil
}

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string. An empty host listens on all
// interfaces.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses s of form [host]:port. The host must be empty, "localhost" or an
// IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
