package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for talking to external JSON APIs such as
// the transactional mail provider. It embeds *resty.Client so call sites
// use resty's request builder directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient preconfigured to send and
// accept JSON. Base URL, authentication, and timeouts are left to the
// caller; each call returns a client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetBody(payload).
//	    Post("https://api.example.com/v3/mail/send")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
