package account

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jdgames/account-service/internal/auth"
	"github.com/jdgames/account-service/internal/authz"
	"github.com/jdgames/account-service/internal/platform/httpx"
)

// Handler wires HTTP endpoints for account operations.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers account routes on the provided router. Login, signup
// and fetch establish or require no identity; everything else sits behind
// the authentication gate, narrowed per route by capability.
func (h *Handler) MountRoutes(r chi.Router, authn auth.Authenticator, gate authz.Middleware) {
	r.Route("/v1/account", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/signup", h.handleSignup)
		r.Get("/{id}", h.handleFetch)

		r.Group(func(r chi.Router) {
			r.Use(authn.Middleware)
			r.With(gate.Require(authz.CapSuspendAccounts)).Post("/{id}/suspend", h.handleSuspend)
			r.Post("/{id}/edit-user", h.handleEdit)
			r.With(gate.Require(authz.CapEditRoles)).Post("/{id}/edit-user-role", h.handleEditRole)
		})
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}
	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(w, "login", err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

type signupRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "all fields are required")
		return
	}
	err := h.service.Signup(r.Context(), SignupInput{
		Nickname: req.Nickname,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(w, "signup", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"message": "account created"})
}

func (h *Handler) handleFetch(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, "fetch account", err)
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	identity := authz.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var updates map[string]any
	if err := httpx.DecodeJSON(r, &updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.service.Edit(r.Context(), identity, chi.URLParam(r, "id"), updates); err != nil {
		h.respondError(w, "edit account", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "user updated successfully"})
}

type editRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) handleEditRole(w http.ResponseWriter, r *http.Request) {
	var req editRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.service.EditRole(r.Context(), chi.URLParam(r, "id"), req.Role); err != nil {
		h.respondError(w, "edit role", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "role updated successfully"})
}

type suspendRequest struct {
	Action string `json:"action"`
}

func (h *Handler) handleSuspend(w http.ResponseWriter, r *http.Request) {
	var req suspendRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var suspended bool
	switch req.Action {
	case "suspend":
		suspended = true
	case "unsuspend":
		suspended = false
	default:
		httpx.Error(w, http.StatusBadRequest, "action must be suspend or unsuspend")
		return
	}
	if err := h.service.SetSuspended(r.Context(), chi.URLParam(r, "id"), suspended); err != nil {
		h.respondError(w, "suspend account", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("user %sed successfully", req.Action)})
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	if !httpx.IsClientError(err) {
		h.logger.Error(op+" failed", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
