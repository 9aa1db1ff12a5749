package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptbase/internal/engagement"
	"promptbase/internal/essay"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", essay.ErrNotFound, http.StatusNotFound},
		{"not owner", essay.ErrNotOwner, http.StatusForbidden},
		{"already liked", engagement.ErrAlreadyLiked, http.StatusConflict},
		{"validation", &essay.ValidationError{Field: "title", Message: "too short"}, http.StatusBadRequest},
		{"backend failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, tc.err)

			if rr.Code != tc.want {
				t.Errorf("status = %d, want %d", rr.Code, tc.want)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var body errorBody
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json body: %v", err)
			}
			if body.Error == "" {
				t.Error("error message empty")
			}
		})
	}
}

func TestWriteError_ValidationCarriesField(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, &essay.ValidationError{Field: "year", Message: "must be a 4-digit year"})

	var body errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body.Field != "year" {
		t.Errorf("field = %q, want year", body.Field)
	}
}

func TestWriteError_InternalHidesCause(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	var body errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body.Error != "server error, please retry" {
		t.Errorf("error = %q, internal details should not leak", body.Error)
	}
}
