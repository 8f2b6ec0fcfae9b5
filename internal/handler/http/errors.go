// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while parsing the "Authorization" header in the
// authentication middleware. All three map to 401 in errorStatusMap.
var (
	// ErrEmptyAuthorizationHeader: the request carried no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header could not be split into a
	// scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme was present but the token value was empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
