package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	target := chi.URLParam(r, "target")
	if _, err := h.services.SubscriptionService.Subscribe(ctx, userID, target); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  http.StatusOK,
		Message: "subscribed",
	}, http.StatusOK)
}

func (h *Handler) unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	target := chi.URLParam(r, "target")
	if _, err := h.services.SubscriptionService.Unsubscribe(ctx, userID, target); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  http.StatusOK,
		Message: "unsubscribed",
	}, http.StatusOK)
}
