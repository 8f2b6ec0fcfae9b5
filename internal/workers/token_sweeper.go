// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/metrics"
	"github.com/MKhiriev/author-haven/internal/store"
)

// tokenSweeper periodically removes expired rows from the session token
// revocation set. A revoked token past its own expiry could not
// authenticate anyway, so the row only wastes blacklist lookups.
type tokenSweeper struct {
	ctx      context.Context
	tokens   store.TokenRepository
	interval time.Duration
	logger   *logger.Logger
}

func newTokenSweeper(ctx context.Context, tokens store.TokenRepository, interval time.Duration, logger *logger.Logger) *tokenSweeper {
	return &tokenSweeper{
		ctx:      ctx,
		tokens:   tokens,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine. The loop stops when the
// sweeper's context is cancelled.
func (s *tokenSweeper) Run() {
	go s.loop()
}

func (s *tokenSweeper) loop() {
	s.logger.Info().Dur("interval", s.interval).Msg("token sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Msg("token sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *tokenSweeper) sweep() {
	swept, err := s.tokens.DeleteExpiredTokens(s.ctx)
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired tokens failed")
		return
	}

	if swept > 0 {
		metrics.RevokedTokensSwept.Add(float64(swept))
		s.logger.Info().Int64("swept", swept).Msg("expired tokens removed")
	}
}
