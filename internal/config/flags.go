package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NetAddress is a flag.Value implementation for "host:port" network
// addresses. The host part may be empty ("listen on all interfaces").
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" form.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// Set parses a "host:port" string into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portStr, found := strings.Cut(value, ":")
	if !found {
		return fmt.Errorf("invalid address %q: expected host:port", value)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port in address %q: %w", value, err)
	}

	a.Host = host
	a.Port = port

	return nil
}

// parseFlags reads configuration from command-line flags. Flags that were
// not provided are left at their zero value so the merge step does not
// override values from other sources.
func parseFlags() (*StructuredConfig, error) {
	return parseFlagsFromArgs(os.Args[1:])
}

func parseFlagsFromArgs(args []string) (*StructuredConfig, error) {
	flags := flag.NewFlagSet("author-haven", flag.ContinueOnError)

	address := &NetAddress{}
	flags.Var(address, "a", "HTTP server address host:port")
	dsn := flags.String("d", "", "PostgreSQL connection string (DSN)")
	jsonPath := flags.String("c", "", "path to JSON configuration file")
	flags.StringVar(jsonPath, "config", *jsonPath, "path to JSON configuration file")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = address.String()
	cfg.Storage.DB.DSN = *dsn
	cfg.JSONFilePath = *jsonPath

	return cfg, nil
}
