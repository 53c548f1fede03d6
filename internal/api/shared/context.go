// Package shared holds helpers used across all API handlers: context
// keys, request decoding, and response writing.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the type for context values set by the API layer.
type ContextKey string

const (
	// UserIDContextKey is the context key for the authenticated user's ID.
	UserIDContextKey ContextKey = "userID"

	// IsAdminContextKey is the context key for the authenticated user's admin flag.
	IsAdminContextKey ContextKey = "isAdmin"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a fresh trace ID to the context for log correlation.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; an empty
		// trace ID only degrades log correlation.
		return ""
	}
	return hex.EncodeToString(b)
}
