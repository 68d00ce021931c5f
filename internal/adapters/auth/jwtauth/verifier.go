package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"venture-hub/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// Verifier valida tokens HS256 emitidos por el servicio de sesiones. El user id viaja en "sub".
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

type Option func(*Verifier)

// WithIssuer exige un "iss" puntual.
func WithIssuer(iss string) Option {
	return func(v *Verifier) { v.issuer = strings.TrimSpace(iss) }
}

func WithLeeway(d time.Duration) Option {
	return func(v *Verifier) { v.leeway = d }
}

func NewVerifier(secret string, opts ...Option) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	v := &Verifier{secret: []byte(secret), leeway: 30 * time.Second}
	for _, o := range opts {
		o(v)
	}
	return v, nil
}

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}

	var tc tokenClaims
	if _, err := jwt.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, parserOpts...); err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub := strings.TrimSpace(tc.Subject)
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return auth.Claims{UserID: sub, Email: tc.Email}, nil
}

// Sign emite un token con el mismo formato que acepta Verify (dev y tests).
func (v *Verifier) Sign(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	tc := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(v.secret)
}
