package router

import (
	"net/http"

	"github.com/andestack/contactline/internal/tenancy"
)

// resolveNamespace stores the record namespace in the request context. The
// client never chooses it: an explicitly configured namespace wins, then the
// request host, then the shared default.
func resolveNamespace(explicit func() string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ns string
			if explicit != nil {
				ns = explicit()
			}
			ctx := tenancy.WithNamespace(r.Context(), tenancy.Resolve(ns, r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
