package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/schoolshop/internal/constants"
	"github.com/google/uuid"
)

// RequestIdMiddleware 每個request配一個uuid，log追蹤用
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), constants.RequestIDKey, requestID)
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
