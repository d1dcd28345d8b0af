// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The kick-off Authors

package config

import (
	"errors"
	"flag"
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

// parseFlags parses the server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config JSON or YAML config file path
//	-password-pepper password pepper
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors comma separated allowed origins
//	-audit-retention-days audit retention in days
//	-skip-migrations do not apply migrations on startup
//	-metrics-namespace prometheus namespace
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var configPath string
	var passwordPepper string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var corsOrigins string
	var retentionDays int
	var skipMigrations bool
	var metricsNamespace string

	fs := flag.NewFlagSet("kick-off", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&configPath, "c", "", "Config file path (.json, .yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&passwordPepper, "password-pepper", "", "Password pepper")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&corsOrigins, "cors", "", "Allowed CORS origins, comma separated")
	fs.IntVar(&retentionDays, "audit-retention-days", 0, "Audit log retention in days")
	fs.BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on startup")
	fs.StringVar(&metricsNamespace, "metrics-namespace", "", "Prometheus metrics namespace")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var origins []string
	for _, o := range strings.Split(corsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &StructuredConfig{
		App: App{
			PasswordPepper: passwordPepper,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver:         databaseDriver,
				DSN:            databaseDSN,
				SkipMigrations: skipMigrations,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigins:    origins,
		},
		Audit: Audit{
			RetentionDays: retentionDays,
		},
		Metrics: Metrics{
			Namespace: metricsNamespace,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
