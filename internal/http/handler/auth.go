package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"promptbase/internal/auth"

	"gorm.io/gorm"
)

type AuthHandler struct {
	DB       *gorm.DB
	JWT      *auth.JWT
	Notifier *auth.Notifier
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json"})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || len(req.Password) < 8 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "email and a password of at least 8 characters are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	u := auth.User{Email: req.Email, PasswordHash: hash}
	if err := h.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			writeJSON(w, http.StatusConflict, errorBody{Error: "email already used"})
			return
		}
		writeError(w, err)
		return
	}

	token, err := h.JWT.Sign(u.ID, u.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Notifier.Publish(auth.Event{Type: auth.EventSignedIn, UserID: u.ID, Email: u.Email})
	writeJSON(w, http.StatusCreated, map[string]any{"token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json"})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "email and password are required"})
		return
	}

	var u auth.User
	if err := h.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
		return
	}
	if !auth.ComparePassword(u.PasswordHash, req.Password) {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
		return
	}

	token, err := h.JWT.Sign(u.ID, u.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Notifier.Publish(auth.Event{Type: auth.EventSignedIn, UserID: u.ID, Email: u.Email})
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

// Logout broadcasts the sign-out so connected clients reset their cached
// state instead of reloading.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.SessionFromContext(r.Context())
	h.Notifier.Publish(auth.Event{Type: auth.EventSignedOut, UserID: s.UserID, Email: s.Email})
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the current identity, or null for anonymous callers.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	s, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"session": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session": map[string]any{
			"user_id": s.UserID,
			"email":   s.Email,
		},
	})
}
