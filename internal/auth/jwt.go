package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrNotAdmin     = errors.New("token missing admin role")
)

// Claims are the admin token claims
type Claims struct {
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTValidator validates and issues HS256 admin tokens
type JWTValidator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTValidator creates a new JWT validator
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Enabled reports whether a signing secret is configured
func (v *JWTValidator) Enabled() bool {
	return len(v.secret) > 0
}

// ValidateToken validates a JWT token and returns the caller
func (v *JWTValidator) ValidateToken(tokenString string) (*Principal, error) {
	if !v.Enabled() {
		return nil, fmt.Errorf("%w: token authentication disabled", ErrInvalidToken)
	}

	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	p := &Principal{
		Subject: claims.Subject,
		Name:    claims.Name,
		Method:  MethodJWT,
		Roles:   claims.Roles,
	}
	if !p.HasRole(RoleAdmin) {
		return nil, ErrNotAdmin
	}
	return p, nil
}

// IssueToken signs an admin token for subject valid for ttl
func (v *JWTValidator) IssueToken(subject, name string, ttl time.Duration) (string, error) {
	if !v.Enabled() {
		return "", fmt.Errorf("%w: no signing secret configured", ErrInvalidToken)
	}
	now := v.now()
	claims := Claims{
		Name:  name,
		Roles: []string{RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
