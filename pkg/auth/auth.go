package auth

import (
	"context"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type ctxKey struct{}

// Identity is the authenticated principal resolved from the session.
type Identity struct {
	Email string
	Name  string
	Role  string
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
