package handler

import (
	"encoding/json"
	"net/http"

	"promptbase/internal/auth"
	"promptbase/internal/essay"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EssayHandler struct {
	Svc *essay.Service
}

func essayID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func (h *EssayHandler) List(w http.ResponseWriter, r *http.Request) {
	q := essay.Query{
		College: r.URL.Query().Get("college"),
		Prompt:  r.URL.Query().Get("prompt"),
		Major:   r.URL.Query().Get("major"),
		Search:  r.URL.Query().Get("q"),
	}

	rows, err := h.Svc.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *EssayHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	e, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EssayHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	var in essay.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json"})
		return
	}

	e, err := h.Svc.Create(r.Context(), s.UserID, s.Email, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *EssayHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	var in essay.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json"})
		return
	}

	e, err := h.Svc.Update(r.Context(), id, s.UserID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EssayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())

	id, ok := essayID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid essay id"})
		return
	}

	if err := h.Svc.Delete(r.Context(), id, s.UserID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Catalog serves the selectable college/prompt/major lists for forms and
// filter bars.
func (h *EssayHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"colleges": essay.Colleges,
		"prompts":  essay.Prompts,
		"majors":   essay.Majors,
	})
}
