package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"promptbase/internal/engagement"
	"promptbase/internal/essay"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeError translates domain errors into HTTP responses. Anything not in
// the taxonomy is logged and surfaced as a retryable 500.
func writeError(w http.ResponseWriter, err error) {
	var vErr *essay.ValidationError
	switch {
	case errors.Is(err, essay.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "essay not found"})
	case errors.Is(err, essay.ErrNotOwner):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "you can only modify your own essays"})
	case errors.Is(err, engagement.ErrAlreadyLiked):
		writeJSON(w, http.StatusConflict, errorBody{Error: "already liked"})
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: vErr.Message, Field: vErr.Field})
	default:
		log.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "server error, please retry"})
	}
}
