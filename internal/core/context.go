package core

import "context"

type contextKey string

const ctxKeyIPAddress contextKey = "audit_ip"

// ContextWithIPAddress adds the caller's IP address to the context so the
// audit trail can record where a lifecycle action came from.
func ContextWithIPAddress(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyIPAddress, ip)
}

// IPAddressFromContext extracts the caller IP from the context.
func IPAddressFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyIPAddress).(string); ok {
		return v
	}
	return ""
}
