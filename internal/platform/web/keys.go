package web

import "context"

// requestIDKey is the unexported context key for the request identifier.
type requestIDKey struct{}

// ContextWithRequestID returns a copy of ctx that carries the request
// identifier assigned by the middleware chain.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom extracts the request identifier from ctx, reporting whether
// one was set.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
