package middleware

import (
	"errors"
	"net/http"

	"github.com/hrms-server/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired admits requests carrying a verified access token that names a user and a known role.
// It must run after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				if errors.Is(err, jwtauth.ErrExpired) {
					response.HandleError(w, auth.ErrTokenExpired)
					return
				}
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if userID, ok := claims["user_id"].(string); !ok || !validator.IsValidUUID(userID) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			role, _ := claims["role"].(string)
			if _, known := user.RolePermissions[user.Role(role)]; !known {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
