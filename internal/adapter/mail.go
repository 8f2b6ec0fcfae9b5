// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations for the author-haven
// server. The primary abstraction is the mail client, which delivers
// activation and password-reset mail through a SendGrid-compatible
// HTTP API. Provider errors are normalised to the sentinel values in
// errors.go so callers can use [errors.Is] without inspecting status codes.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/author-haven/internal/config"
	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	mailSendPath       = "/v3/mail/send"
	defaultMailTimeout = 15 * time.Second
)

// MailClient delivers transactional mail through a SendGrid-compatible
// HTTP API. It implements service.MailSender.
type MailClient struct {
	client *utils.HTTPClient
	sender string
	logger *logger.Logger
}

// mailRequest is the provider wire format for a single send.
type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             mailAddress       `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

type personalization struct {
	To []mailAddress `json:"to"`
}

type mailAddress struct {
	Email string `json:"email"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// NewMailClient constructs a MailClient from the mail configuration.
// It normalises and validates the provider base URL and configures the
// underlying HTTP client with the API key and request timeout.
//
// Returns ErrMailNotConfigured when the base URL or API key is empty, so
// the caller can decide to run without outbound mail.
func NewMailClient(cfg config.Mail, logger *logger.Logger) (*MailClient, error) {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil, ErrMailNotConfigured
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail provider address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultMailTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey)

	return &MailClient{client: client, sender: cfg.Sender, logger: logger}, nil
}

// SendActivationMail delivers the account-activation link to recipient.
func (m *MailClient) SendActivationMail(ctx context.Context, recipient, activationLink string) error {
	body := fmt.Sprintf("<p>Welcome to Author's Haven!</p><p>Follow <a href=%q>this link</a> to activate your account.</p>", activationLink)
	return m.send(ctx, recipient, "Activate your Author's Haven account", body)
}

// SendPasswordResetMail delivers the time-boxed password-reset link to recipient.
func (m *MailClient) SendPasswordResetMail(ctx context.Context, recipient, resetLink string) error {
	body := fmt.Sprintf("<p>A password reset was requested for your account.</p><p>Follow <a href=%q>this link</a> to choose a new password. The link expires soon.</p><p>If you did not request a reset, ignore this mail.</p>", resetLink)
	return m.send(ctx, recipient, "Reset your Author's Haven password", body)
}

func (m *MailClient) send(ctx context.Context, recipient, subject, htmlBody string) error {
	payload := mailRequest{
		Personalizations: []personalization{{To: []mailAddress{{Email: recipient}}}},
		From:             mailAddress{Email: m.sender},
		Subject:          subject,
		Content:          []mailContent{{Type: "text/html", Value: htmlBody}},
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(mailSendPath)
	if err != nil {
		return fmt.Errorf("mail send request: %w", err)
	}

	return mapMailError(resp)
}

func mapMailError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrMailRejected, resp.StatusCode(), body)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
