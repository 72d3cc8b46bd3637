package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenAuth = jwtauth.New("HS256", []byte("middleware-test-secret"), nil)

func newProtectedRouter(permission user.Permission) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(tokenAuth))
	r.Use(AuthRequired(tokenAuth))
	r.With(RequirePermission(permission)).Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "ok")
	})
	return r
}

func encode(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	_, token, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return token
}

func serve(t *testing.T, h http.Handler, token string) (int, response.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func accessClaims(role user.Role) map[string]interface{} {
	return map[string]interface{}{
		"user_id": "0192a4c1-7b8c-7b4a-8a2b-6b8b8b8b8b01",
		"name":    "Jane Doe",
		"role":    string(role),
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthRequired(t *testing.T) {
	h := newProtectedRouter(user.PermissionAttendanceCreate)

	t.Run("valid access token", func(t *testing.T) {
		code, resp := serve(t, h, encode(t, accessClaims(user.RoleEmployee)))
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Success)
	})

	t.Run("missing token", func(t *testing.T) {
		code, _ := serve(t, h, "")
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := accessClaims(user.RoleEmployee)
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		code, resp := serve(t, h, encode(t, claims))
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "Token expired", resp.Error.Message)
	})

	t.Run("wrong token type", func(t *testing.T) {
		claims := accessClaims(user.RoleEmployee)
		claims["type"] = "refresh"
		code, _ := serve(t, h, encode(t, claims))
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("missing user id", func(t *testing.T) {
		claims := accessClaims(user.RoleEmployee)
		delete(claims, "user_id")
		code, _ := serve(t, h, encode(t, claims))
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("non uuid user id", func(t *testing.T) {
		claims := accessClaims(user.RoleEmployee)
		claims["user_id"] = "42"
		code, resp := serve(t, h, encode(t, claims))
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "Invalid or expired token", resp.Error.Message)
	})

	t.Run("unknown role", func(t *testing.T) {
		code, _ := serve(t, h, encode(t, accessClaims(user.Role("Owner"))))
		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

func TestRequirePermission(t *testing.T) {
	cases := []struct {
		role       user.Role
		permission user.Permission
		status     int
	}{
		{user.RoleEmployee, user.PermissionAttendanceViewOwn, http.StatusOK},
		{user.RoleEmployee, user.PermissionAttendanceViewAll, http.StatusForbidden},
		{user.RoleHR, user.PermissionLeaveApprove, http.StatusOK},
		{user.RoleHR, user.PermissionAuditView, http.StatusForbidden},
		{user.RoleAdmin, user.PermissionAuditView, http.StatusOK},
	}

	for _, c := range cases {
		t.Run(string(c.role)+" "+string(c.permission), func(t *testing.T) {
			code, resp := serve(t, newProtectedRouter(c.permission), encode(t, accessClaims(c.role)))
			assert.Equal(t, c.status, code)
			if c.status == http.StatusForbidden {
				assert.Contains(t, resp.Error.Message, string(c.permission))
			}
		})
	}
}
