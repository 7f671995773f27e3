package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bookit-dev/bookit/internal/domain"
	internal_errors "github.com/bookit-dev/bookit/internal/errors"
	"github.com/bookit-dev/bookit/internal/jwt"
	"github.com/bookit-dev/bookit/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// CookieName carries the session token. HttpOnly always; Secure per config.
const CookieName = "accessToken"

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid session token. The
// verified claims are the only legitimate source of caller identity for
// every downstream handler.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				if err == errNoToken {
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
					return
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser extracts and validates the caller identity from the request.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	// Cookie first (browser clients), then Authorization header (API clients)
	var tokenString string
	accessCookie, err := r.Cookie(CookieName)
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	claims, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &domain.User{Id: claims.UserId, Email: claims.Email}, nil
}

var errNoToken = &internal_errors.ErrorWithStatusCode{Message: "no token", StatusCode: http.StatusUnauthorized}

// GetUserFromContext retrieves the verified caller from the context.
// Returns nil when the request passed through no auth middleware.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
