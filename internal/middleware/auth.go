package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gobid/auctionhouse/internal/handlers"
	"github.com/gobid/auctionhouse/internal/identity"
	"github.com/gobid/auctionhouse/pkg/config"
)

// OptionalAuth verifies a Bearer token when one is present and stashes the
// claims in the request context. Requests without an Authorization header
// pass through untouched; the handler decides whether an identity is
// required. A token that is present but invalid is rejected here.
func OptionalAuth(verifier identity.Verifier) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				h.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				handlers.RespondErrorJSON(w, r, http.StatusUnauthorized, handlers.ErrMissingToken.Error(), "Malformed Authorization header", nil)
				return
			}

			userID, err := verifier.Verify(parts[1])
			if err != nil {
				handlers.RespondErrorJSON(w, r, http.StatusUnauthorized, handlers.ErrInvalidToken.Error(), "Token is either expired or invalid.", nil)
				return
			}

			claims := &config.UserClaims{UserID: userID}
			ctx := context.WithValue(r.Context(), config.UserClaimKey, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
