package dataloader

import "net/http"

// Middleware gives every request its own Loaders. They are built on first
// use, so the timeline and entry routes that never enrich a listing do not
// allocate any.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(withLazyLoaders(r.Context(), repos)))
		})
	}
}
