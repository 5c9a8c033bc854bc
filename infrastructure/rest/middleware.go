package rest

import (
	"context"
	"net/http"
	"strings"

	"teamboard/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// authenticated enforces a valid bearer token and stores the claims in the
// request context for handlers to identify the caller.
func (s *Server) authenticated(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			s.log.Debug("Rejected token", "error", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	})
}

// callerFrom returns the authenticated username stored by the middleware.
func callerFrom(r *http.Request) string {
	claims, ok := r.Context().Value(claimsKey).(*auth.CustomClaims)
	if !ok {
		return ""
	}
	return claims.Username
}
