package auth

import "context"

// Principal is the authenticated identity attached to one request. It is
// rebuilt from the verified token on every request and never persisted.
type Principal struct {
	UserID   uint
	Username string
	Role     string
}

type principalKey struct{}

// WithPrincipal returns a context carrying the given principal. Identity is
// an explicit context value, not a goroutine-local: nothing can leak across
// requests because every request gets its own context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the request's principal, if one was installed.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
