package middleware

import (
	"context"
	"errors"
	"net/http"

	"comanda_server/lib"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing user data in request context
type contextKey string

const ClaimsContextKey contextKey = "claims"

// UserAuthMiddleware protects routes to only logged-in users. A missing
// credential is 401; a present but invalid or expired one is 403.
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := lib.BearerToken(r)
		if err != nil {
			if errors.Is(err, lib.ErrInvalidCredentials) {
				gecho.Unauthorized(w, gecho.WithMessage("Missing access token"), gecho.Send())
				return
			}
			gecho.Forbidden(w, gecho.WithMessage("Invalid access token"), gecho.Send())
			return
		}

		claims, err := lib.ParseToken(token, mw.cfg.Auth.TokenSecret)
		if err != nil {
			mw.logger.Warn("Rejected invalid access token", gecho.Field("error", err))
			gecho.Forbidden(w, gecho.WithMessage("Invalid access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole restricts a route to the given roles. Must be used after
// UserAuthMiddleware.
func (mw *Middleware) RequireRole(roles ...tables.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaimsFromContext(r.Context())
			if !ok {
				gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
				return
			}

			for _, role := range roles {
				if claims.Role == string(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			mw.logger.Warn("Insufficient role for route",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("role", claims.Role),
				gecho.Field("path", r.URL.Path),
			)
			gecho.Forbidden(w, gecho.WithMessage("Insufficient permissions"), gecho.Send())
		})
	}
}

// GetClaimsFromContext extracts the verified claims from request context.
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}
