package http

import (
	"net/http"

	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// actor is the authenticated caller as carried in the access token
type actor struct {
	ID   string
	Name string
	Role user.Role
}

func actorFromRequest(r *http.Request) (actor, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return actor{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return actor{}, false
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return actor{ID: userID, Name: name, Role: user.Role(role)}, true
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
