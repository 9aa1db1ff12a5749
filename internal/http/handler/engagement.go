package handler

import (
	"net/http"

	"promptbase/internal/auth"
	"promptbase/internal/engagement"
)

type EngagementHandler struct {
	Svc *engagement.Service
}

func (h *EngagementHandler) Like(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	if err := h.Svc.Like(r.Context(), s.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *EngagementHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	if err := h.Svc.Unlike(r.Context(), s.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Status returns the like count plus, for signed-in callers, whether they
// have liked or saved the essay.
func (h *EngagementHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	var userID *uint64
	if s, ok := auth.SessionFromContext(r.Context()); ok {
		userID = &s.UserID
	}

	st, err := h.Svc.Status(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *EngagementHandler) Save(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	if err := h.Svc.Save(r.Context(), s.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EngagementHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	if err := h.Svc.Unsave(r.Context(), s.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
