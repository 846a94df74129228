package middleware

import (
	"net/http"

	context "skyward-va/horizon/internal/auth"
)

// IsStaffMiddleware admits staff and admin roles; review actions need
// at least staff.
func IsStaffMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := context.GetUserClaims(r.Context())

			if claims == nil || !claims.IsStaff() {
				http.Error(w, "Unauthorized. Need staff perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
