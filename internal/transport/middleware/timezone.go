package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/lifelog-timeline/pkg/ctxutil"
)

// TimezoneHeader carries the IANA zone the client wants calendar days in.
const TimezoneHeader = "X-Timezone"

// Timezone stores the zone named by the X-Timezone header in the request
// context. Requests without the header keep the server's configured zone.
func Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.Header.Get(TimezoneHeader)
		if name == "" {
			next.ServeHTTP(w, r)
			return
		}
		loc, err := time.LoadLocation(name)
		if err != nil || name == "Local" {
			writeError(w, http.StatusBadRequest, "unknown time zone "+name)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithLocation(r.Context(), loc)))
	})
}
