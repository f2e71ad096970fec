package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func RequireAuth(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, "session")
			userID := session.Values["user_id"]

			if userID == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireRole(store *sessions.CookieStore, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, "session")
			userID := session.Values["user_id"]
			userRole, _ := session.Values["role"].(string)

			if userID == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			for _, role := range roles {
				if models.Role(userRole) == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "Access denied", http.StatusForbidden)
		})
	}
}
