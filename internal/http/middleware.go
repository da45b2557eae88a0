package http

import (
	"context"
	"net/http"
)

type contextKey string

const customerIDKey contextKey = "customer_id"

// CustomerIDMiddleware trusts the X-Customer-ID header set by the auth layer
// in front of this service. Identity itself is out of scope here.
func CustomerIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := r.Header.Get("X-Customer-ID")
		if customerID != "" {
			ctx := context.WithValue(r.Context(), customerIDKey, customerID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func customerIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(customerIDKey).(string); ok {
		return id
	}
	return ""
}

// requireCustomer pulls the customer id or writes a 401 and returns "".
func requireCustomer(w http.ResponseWriter, r *http.Request) string {
	customerID := customerIDFromContext(r.Context())
	if customerID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identification")
	}
	return customerID
}
