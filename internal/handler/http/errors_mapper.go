package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/service"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrInvalidRating:              http.StatusBadRequest,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,
	service.ErrTokenRevoked:               http.StatusUnauthorized,
	service.ErrUserNotActivated:           http.StatusForbidden,
	service.ErrNotArticleAuthor:           http.StatusForbidden,
	service.ErrSubscriptionTargetNotFound: http.StatusNotFound,
	service.ErrNotSubscribed:              http.StatusBadRequest,
	service.ErrTokenCreationFailed:        http.StatusInternalServerError,
	service.ErrNoBookmarkToRemove:         http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrBookmarkAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrArticleNotFound:       http.StatusNotFound,
	store.ErrBookmarkNotFound:      http.StatusNotFound,
	store.ErrSubscriptionNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes the uniform failure
// envelope. Internal errors are logged with their cause but presented to
// the client as a bare status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Status: status, Message: message}, status)
}

// writeBadRequest writes the uniform failure envelope with a fixed message,
// used for malformed JSON and validation failures.
func writeBadRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Status: http.StatusBadRequest, Message: message}, http.StatusBadRequest)
}
