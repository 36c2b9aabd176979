package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tempohr/tempo-backend-go/internal/domain/authorization"
	"github.com/tempohr/tempo-backend-go/internal/handler/http/response"
)

type AuthorizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AuthorizationHandlerImpl struct {
	authorizationService authorization.AuthorizationService
}

func NewAuthorizationHandler(authorizationService authorization.AuthorizationService) AuthorizationHandler {
	return &AuthorizationHandlerImpl{authorizationService: authorizationService}
}

// Create implements AuthorizationHandler.
func (h *AuthorizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req authorization.CreateAuthorizationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAuthorization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authorizationService.CreateAuthorization(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Authorization created successfully", resp)
}

// Get implements AuthorizationHandler.
func (h *AuthorizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Authorization ID is required", nil)
		return
	}

	resp, err := h.authorizationService.GetAuthorization(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AuthorizationHandler.
func (h *AuthorizationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authorizationService.ListAuthorizations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements AuthorizationHandler.
func (h *AuthorizationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req authorization.UpdateAuthorizationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAuthorization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.authorizationService.UpdateAuthorization(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Authorization updated successfully", resp)
}

// Delete implements AuthorizationHandler.
func (h *AuthorizationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Authorization ID is required", nil)
		return
	}

	if err := h.authorizationService.DeleteAuthorization(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Authorization deleted successfully", nil)
}
