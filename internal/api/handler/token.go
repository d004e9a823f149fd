package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/api/request"
	"github.com/unyx/random/internal/api/response"
	"github.com/unyx/random/internal/model"
	"github.com/unyx/random/internal/services/token"
)

// TokenHandler handles token lifecycle endpoints
type TokenHandler struct {
	tokenService *token.Service
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokenService *token.Service) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// Issue handles POST /api/v1/tokens
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req request.IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var flags random.Flag
	if req.Flags != "" {
		parsed, err := random.ParseFlags(req.Flags)
		if err != nil {
			WriteError(w, err)
			return
		}
		flags = parsed
	}

	if req.TTLSeconds < 0 {
		WriteError(w, NewInvalidRequestError("ttl_seconds must not be negative"))
		return
	}

	issued, err := h.tokenService.Issue(r.Context(), token.IssueParams{
		Purpose: req.Purpose,
		Length:  req.Length,
		Flags:   flags,
		TTL:     time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	// The only response that ever carries the token value.
	response.JSON(w, http.StatusCreated, response.TokenFromModel(issued, true))
}

// Get handles GET /api/v1/tokens/{id}
func (h *TokenHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.TokenID(mux.Vars(r)["id"])

	found, err := h.tokenService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TokenFromModel(found, false))
}

// Revoke handles DELETE /api/v1/tokens/{id}
func (h *TokenHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id := model.TokenID(mux.Vars(r)["id"])

	if err := h.tokenService.Revoke(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
