package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"clicktracker/internal/core/port"
)

const (
	sessionCookie = "session"
	cookiePath    = "/api/v1/admin"
)

type adminKey struct{}

// AdminFromContext returns the admin name set by requireAdmin.
func AdminFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(adminKey{}).(string)
	return name, ok
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginResponse struct {
	Admin     string    `json:"admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleLogin accepts JSON or form encoded credentials and sets the
// session cookie.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
	} else {
		req.Name = r.PostFormValue("name")
		req.Password = r.PostFormValue("password")
	}
	if req.Name == "" || req.Password == "" {
		h.writeError(w, http.StatusBadRequest, "Bad request")
		return
	}

	sess, err := h.svc.Auth.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if !errors.Is(err, port.ErrUnauthorized) {
			h.logger.Error("admin login", slog.Any("error", err))
		}
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.Token,
		Path:     cookiePath,
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	h.writeJSON(w, http.StatusOK, loginResponse{Admin: sess.Admin, ExpiresAt: sess.ExpiresAt})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// requireAdmin accepts the session cookie or an Authorization bearer token.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			token = c.Value
		} else if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
		if token == "" {
			h.writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		sess, err := h.svc.Auth.Verify(token)
		if err != nil {
			h.writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminKey{}, sess.Admin)))
	})
}
