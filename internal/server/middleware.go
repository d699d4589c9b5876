package server

import (
	"context"
	"net/http"

	"parcelverge/internal/auth"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// requireAuth verifies the token cookie and stores the claims in the request
// context. Authorization beyond authentication (email ownership) happens in
// the individual handlers.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		claims, err := s.auth.Verify(cookie.Value)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}
