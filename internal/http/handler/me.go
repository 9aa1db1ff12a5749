package handler

import (
	"net/http"

	"promptbase/internal/auth"
	"promptbase/internal/engagement"
	"promptbase/internal/essay"
)

// MeHandler serves the dashboard: the caller's identity and their own,
// saved, and liked essay lists. Clients fetch the three lists in parallel;
// they have no ordering dependency on each other.
type MeHandler struct {
	Essays     *essay.Service
	Engagement *engagement.Service
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": s.UserID,
		"email":   s.Email,
	})
}

func (h *MeHandler) MyEssays(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	rows, err := h.Essays.ListByUser(r.Context(), s.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *MeHandler) SavedEssays(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	rows, err := h.Engagement.ListSaved(r.Context(), s.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *MeHandler) LikedEssays(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	rows, err := h.Engagement.ListLiked(r.Context(), s.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
