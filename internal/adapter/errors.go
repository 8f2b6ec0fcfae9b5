package adapter

import "errors"

var (
	// ErrMailNotConfigured signals that the mail provider base URL or API
	// key is missing from the configuration.
	ErrMailNotConfigured = errors.New("mail provider is not configured")

	// ErrMailRejected signals that the mail provider refused the request.
	ErrMailRejected = errors.New("mail provider rejected the request")
)
