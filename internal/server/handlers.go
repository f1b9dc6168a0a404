package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is the shared request validator; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	Preferences string `json:"preferences" validate:"required,min=3,max=2000"`
	MaxResults  int    `json:"max_results" validate:"omitempty,min=1,max=20"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := validate.Struct(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			writeError(w, &ErrValidation{Field: fieldErrs[0].Field(), Message: "failed " + fieldErrs[0].Tag() + " validation"})
			return
		}
		writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	recommendations, err := s.runner.Run(r.Context(), req.Preferences, req.MaxResults)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendations)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), errorResponse{Error: err.Error()})
}
