package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeJSON(w, http.StatusBadRequest, errorResponse("Email and password are required."))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse("Email is already registered."))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		}
		return
	}

	resp := successResponse("User registered successfully")
	resp["user"] = user
	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	user, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeJSON(w, http.StatusBadRequest, errorResponse("Email and password are required."))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, errorResponse("User Not Found."))
		case errors.Is(err, service.ErrPasswordIncorrect):
			writeJSON(w, http.StatusUnauthorized, errorResponse("Password is incorrect."))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error during login."))
		}
		return
	}

	resp := successResponse("Login successful")
	resp["user"] = user
	resp["token"] = token
	writeJSON(w, http.StatusOK, resp)
}

// HandleLogout handles POST /api/auth/logout requests. Tokens are
// stateless, so there is no server-side session to tear down; the
// token stays valid until its natural expiry.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, successResponse("Logged out successfully"))
}

// HandleMe handles GET /api/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	user, err := h.service.GetUser(r.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("User not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}

	resp := successResponse("OK")
	resp["user"] = user
	writeJSON(w, http.StatusOK, resp)
}

// HandleListUsers handles GET /api/admin/users requests. The admin
// checkpoint runs before this handler.
func (h *AuthHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}

	resp := successResponse("OK")
	resp["count"] = len(users)
	resp["users"] = users
	writeJSON(w, http.StatusOK, resp)
}
