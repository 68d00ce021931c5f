package introspect

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"venture-hub/internal/platform/httpclient"
	"venture-hub/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("introspection endpoint not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrUnauthorized  = errors.New("token rejected by identity provider")
	ErrUpstream      = errors.New("identity provider error")
)

const DefaultPath = "/v1/tokens/verify"

type Config struct {
	BaseURL string
	APIKey  string

	// APIKeyHeader vacío = "X-Api-Key".
	APIKeyHeader string
	// Path vacío = DefaultPath.
	Path    string
	Timeout time.Duration
}

// Verifier implementa auth.AuthVerifier delegando la validación del token en el
// proveedor de identidad (AUTH_MODE=remote).
type Verifier struct {
	http         *httpclient.Client
	path         string
	apiKey       string
	apiKeyHeader string
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	v := &Verifier{
		http:         c,
		path:         strings.TrimSpace(cfg.Path),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: strings.TrimSpace(cfg.APIKeyHeader),
	}
	if v.path == "" {
		v.path = DefaultPath
	}
	if v.apiKeyHeader == "" {
		v.apiKeyHeader = "X-Api-Key"
	}
	return v, nil
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var out verifyResponse
	err := v.http.DoJSON(ctx, http.MethodPost, v.path, map[string]string{
		v.apiKeyHeader:  v.apiKey,
		"Authorization": "Bearer " + token,
	}, map[string]string{"token": token}, &out)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return auth.Claims{}, ErrUnauthorized
		default:
			return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	userID := strings.TrimSpace(out.UserID)
	if userID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}
	return auth.Claims{
		UserID: userID,
		Email:  strings.TrimSpace(out.Email),
	}, nil
}
