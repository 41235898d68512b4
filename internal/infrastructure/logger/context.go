package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for the request ID
	RequestIDKey contextKey = "request_id"
	// StoreIDKey is the context key for the store ID
	StoreIDKey contextKey = "store_id"
	// CustomerIDKey is the context key for the customer ID
	CustomerIDKey contextKey = "customer_id"
)

// WithLogger returns a new context with the logger attached
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext extracts the logger from the context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID returns a new context with the request ID attached
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID extracts the request ID from the context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithStoreID returns a new context with the store ID attached
func WithStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, StoreIDKey, storeID)
}

// GetStoreID extracts the store ID from the context
func GetStoreID(ctx context.Context) string {
	if storeID, ok := ctx.Value(StoreIDKey).(string); ok {
		return storeID
	}
	return ""
}

// WithCustomerID returns a new context with the customer ID attached
func WithCustomerID(ctx context.Context, customerID string) context.Context {
	return context.WithValue(ctx, CustomerIDKey, customerID)
}

// GetCustomerID extracts the customer ID from the context
func GetCustomerID(ctx context.Context) string {
	if customerID, ok := ctx.Value(CustomerIDKey).(string); ok {
		return customerID
	}
	return ""
}

// Enrich returns a logger annotated with request-scoped fields from
// the context (request ID, store ID, customer ID) when present.
func Enrich(ctx context.Context, logger *zap.Logger) *zap.Logger {
	fields := make([]zap.Field, 0, 3)
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if storeID := GetStoreID(ctx); storeID != "" {
		fields = append(fields, zap.String("store_id", storeID))
	}
	if customerID := GetCustomerID(ctx); customerID != "" {
		fields = append(fields, zap.String("customer_id", customerID))
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
