package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	slug := chi.URLParam(r, "slug")
	if _, err := h.services.BookmarkService.AddBookmark(ctx, userID, slug); err != nil {
		writeError(w, r, err)
		return
	}

	article, err := h.services.ArticleService.GetArticle(ctx, slug)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := models.BookmarkData{
		Title:       article.Title,
		Body:        article.Body,
		Description: article.Description,
	}
	if article.Author != nil {
		data.Author = article.Author.Username
	}

	utils.WriteJSON(w, models.BookmarkResponse{
		Status:  http.StatusCreated,
		Message: "article bookmarked",
		Data:    data,
	}, http.StatusCreated)
}

func (h *Handler) removeBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	slug := chi.URLParam(r, "slug")
	if err := h.services.BookmarkService.RemoveBookmark(ctx, userID, slug); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  http.StatusOK,
		Message: "bookmark removed",
	}, http.StatusOK)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	saved, err := h.services.BookmarkService.ListBookmarks(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BookmarksResponse{
		Status: http.StatusOK,
		Data:   saved,
	}, http.StatusOK)
}

func (h *Handler) getBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	slug := chi.URLParam(r, "slug")
	saved, err := h.services.BookmarkService.GetBookmark(ctx, userID, slug)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BookmarkedArticleResponse{
		Status: http.StatusOK,
		Data:   saved,
	}, http.StatusOK)
}
