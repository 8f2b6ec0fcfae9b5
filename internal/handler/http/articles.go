// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/metrics"
	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

const defaultPageSize = 20

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	var in articleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("article validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	article := models.Article{
		AuthorID: userID,
		Title:    in.Title,
		Body:     in.Body,
		TagList:  in.TagList,
		Status:   in.Status,
	}
	created, err := h.services.ArticleService.CreateArticle(ctx, article)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.ArticlesCreated.WithLabelValues(created.Status).Inc()

	utils.WriteJSON(w, models.ArticleResponse{
		Status:  http.StatusCreated,
		Article: created,
	}, http.StatusCreated)
}

func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	var in articleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("article validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	slug := chi.URLParam(r, "slug")
	article := models.Article{
		Title:   in.Title,
		Body:    in.Body,
		TagList: in.TagList,
		Status:  in.Status,
	}
	updated, err := h.services.ArticleService.UpdateArticle(ctx, slug, userID, article)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ArticleResponse{
		Status:  http.StatusOK,
		Article: updated,
	}, http.StatusOK)
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	slug := chi.URLParam(r, "slug")
	if err := h.services.ArticleService.DeleteArticle(ctx, slug, userID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  http.StatusOK,
		Message: "article deleted",
	}, http.StatusOK)
}

func (h *Handler) viewArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := chi.URLParam(r, "slug")
	view, err := h.services.ArticleService.GetArticle(ctx, slug)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ArticleViewResponse{
		Status:  http.StatusOK,
		Article: view,
	}, http.StatusOK)
}

func (h *Handler) listOwnPublished(w http.ResponseWriter, r *http.Request) {
	h.listOwn(w, r, models.StatusPublished)
}

func (h *Handler) listOwnDrafts(w http.ResponseWriter, r *http.Request) {
	h.listOwn(w, r, models.StatusDraft)
}

func (h *Handler) listOwn(w http.ResponseWriter, r *http.Request, status string) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	limit, offset := pagination(r)
	articles, err := h.services.ArticleService.ListByAuthor(ctx, userID, status, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, articlesResponse(articles), http.StatusOK)
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset := pagination(r)
	articles, err := h.services.ArticleService.Feed(ctx, limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, articlesResponse(articles), http.StatusOK)
}

func (h *Handler) rateArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in rateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("rating validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	slug := chi.URLParam(r, "slug")
	rated, err := h.services.ArticleService.RateArticle(ctx, slug, in.Rating)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.RatingsRecorded.Inc()

	utils.WriteJSON(w, models.ArticleViewResponse{
		Status: http.StatusOK,
		Article: models.ArticleView{
			Article:       rated,
			AverageRating: rated.AverageRating(),
		},
	}, http.StatusOK)
}

// pagination reads the optional limit/offset query parameters. Absent or
// malformed values fall back to the default page size and a zero offset.
func pagination(r *http.Request) (limit, offset uint64) {
	limit = defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}

func articlesResponse(articles []models.Article) models.ArticlesResponse {
	rated := make([]models.RatedArticle, 0, len(articles))
	for _, article := range articles {
		rated = append(rated, models.RatedArticle{
			Article:       article,
			AverageRating: article.AverageRating(),
		})
	}

	return models.ArticlesResponse{
		Status:        http.StatusOK,
		Articles:      rated,
		ArticlesCount: len(rated),
	}
}
