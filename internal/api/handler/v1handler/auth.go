package v1handler

import (
	"net/http"

	"favsetter/pkg/domain"
	"favsetter/pkg/serrors"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UserResponse struct {
	User *domain.User `json:"user"`
}

// Register creates an account and logs it in.
func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	user, err := h.deps.Accounts.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.startSession(w, r, user, http.StatusCreated)
}

// Login checks the credentials and sets the session cookie.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "email and password are required"))

		return
	}

	user, err := h.deps.Accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	h.startSession(w, r, user, http.StatusOK)
}

// Logout clears the session cookie. It succeeds without a session.
func (h Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.deps.Sessions.ClearCookie())
	writeJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// Me returns the authenticated user.
func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Accounts.User(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// ChangePassword replaces the password and ends the current session.
func (h Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	err := h.deps.Accounts.ChangePassword(r.Context(),
		GetUserIDFromContext(r.Context()),
		req.CurrentPassword,
		req.NewPassword)
	if err != nil {
		writeError(w, r, err)

		return
	}

	http.SetCookie(w, h.deps.Sessions.ClearCookie())
	writeJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

func (h Handler) startSession(w http.ResponseWriter, r *http.Request, user *domain.User, status int) {
	token, expiresAt, err := h.deps.Sessions.Issue(user.ID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	http.SetCookie(w, h.deps.Sessions.Cookie(token, expiresAt))
	writeJSON(w, r, status, UserResponse{User: user})
}
