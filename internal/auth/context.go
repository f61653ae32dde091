package auth

import (
	"context"
)

// Authentication methods recorded on a Principal
const (
	MethodAPIKey = "api_key"
	MethodJWT    = "jwt"
)

// RoleAdmin grants access to the submissions API
const RoleAdmin = "admin"

// Principal is the authenticated caller of an admin request
type Principal struct {
	Subject string
	Name    string
	Method  string
	Roles   []string
}

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal adds the caller to the context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext extracts the caller from the context
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

// HasRole checks if the caller has a specific role
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
