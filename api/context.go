package api

import (
	"context"
	"errors"
)

type keyType string

const identityKey keyType = "identity"

// Identity is the decoded admin identity attached to the request context by
// the auth middleware. Authorization is binary: a request either carries a
// valid identity or it does not.
type Identity struct {
	AdminID  uint
	Username string
}

// ctxWithIdentity adds an authenticated identity to the context
func ctxWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// ctxGetIdentity retrieves the authenticated identity from the context
func ctxGetIdentity(ctx context.Context) (Identity, error) {
	value := ctx.Value(identityKey)
	if value == nil {
		return Identity{}, errors.New("identity not found in context")
	}
	identity, ok := value.(Identity)
	if !ok {
		return Identity{}, errors.New("identity has unexpected type")
	}
	return identity, nil
}
