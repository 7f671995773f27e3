package handler

import (
	"net/http"

	"github.com/bookit-dev/bookit/internal/domain"
	"github.com/bookit-dev/bookit/internal/middleware"
	"github.com/bookit-dev/bookit/internal/utils"
)

type registerBody struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type credentials struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := loadAndValidateRequestBody(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, token, err := h.auth.Register(body.Name, body.Email, body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, map[string]interface{}{"message": "Registration successful", "user": user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := loadAndValidateRequestBody(r, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, token, err := h.auth.Login(domain.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     middleware.CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: h.sameSite(),
	}
	http.SetCookie(w, cookie)

	writeJSON(w, map[string]string{"message": "Logged out successfully"})
}

// Profile returns the caller's identity summary; the password hash never
// leaves the server.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	profile, err := h.auth.Profile(user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, profile)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     middleware.CookieName,
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: h.sameSite(),
	}
	http.SetCookie(w, cookie)
}

// SameSite=None requires Secure; fall back to Lax on plain-http deployments.
func (h *Handler) sameSite() http.SameSite {
	if h.cfg.Public.SecureCookies {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
