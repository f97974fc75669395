package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"ITINERARY_BACK-END/internal/utils"
)

// Recovery turns a handler panic into a 500 error envelope
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				log.Printf("Panic recovered: %v (%s %s)\n%s", err, r.Method, r.URL.Path, debug.Stack())
				utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", "An unexpected error occurred")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Chain applies middleware so the first listed runs outermost
func Chain(h http.Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}
