package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"idms/internal/transport/http/api"
)

// Recoverer turns a panic in a handler into a 500 problem response.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("handler panic",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("requestId", GetRequestID(r.Context())),
					zap.Stack("stack"),
				)
				api.FailDetails(w, r, http.StatusInternalServerError, "internal server error", fmt.Sprint(rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
