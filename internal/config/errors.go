package config

import "errors"

var (
	// ErrTokenSignKeyNotSet signals that no JWT signing key was provided
	// by any configuration source.
	ErrTokenSignKeyNotSet = errors.New("token sign key is not set")

	// ErrDatabaseDSNNotSet signals that no database connection string was
	// provided by any configuration source.
	ErrDatabaseDSNNotSet = errors.New("database connection string is not set")

	// ErrServerAddressNotSet signals that no HTTP listen address was
	// provided by any configuration source.
	ErrServerAddressNotSet = errors.New("server address is not set")

	// ErrReadingConfigFile signals a failure reading the JSON config file.
	ErrReadingConfigFile = errors.New("error reading config file")

	// ErrParsingConfigFile signals a failure decoding the JSON config file.
	ErrParsingConfigFile = errors.New("error parsing config file")
)
