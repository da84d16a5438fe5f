package auth

import (
	"context"

	"stellar-cargo/internal/models"
)

type principalContextKey struct{}

// Principal is the authenticated caller of a request.
type Principal struct {
	User      models.User
	SessionID string
}

func (p Principal) Can(c Capability) bool {
	return Can(p.User.Role, c)
}

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	if ctx == nil {
		return Principal{}, false
	}
	p, ok := ctx.Value(principalContextKey{}).(Principal)
	return p, ok
}
