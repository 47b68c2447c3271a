package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

// AdminUserKey carries the authenticated administrator name in the request
// context.
const AdminUserKey contextKey = "adminUser"

const adminHeader = "X-Admin-User"

// Auth gates administrative routes on the X-Admin-User header. Identity
// verification itself happens upstream at the gateway; this layer only
// requires that an identity was forwarded.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin := r.Header.Get(adminHeader)
		if admin == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "missing " + adminHeader + " header",
			})
			return
		}

		ctx := context.WithValue(r.Context(), AdminUserKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminUser returns the administrator name stored by Auth, or "".
func AdminUser(ctx context.Context) string {
	admin, _ := ctx.Value(AdminUserKey).(string)
	return admin
}
