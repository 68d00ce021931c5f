package introspect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	v, err := NewVerifier(Config{BaseURL: ts.URL, APIKey: "k-123"})
	require.NoError(t, err)
	return v
}

func TestVerify_OK(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultPath, r.URL.Path)
		assert.Equal(t, "k-123", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok", body["token"])

		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": " ana ", "email": "ana@fund.vc"})
	})

	claims, err := v.Verify(context.Background(), " tok ")
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.UserID)
	assert.Equal(t, "ana@fund.vc", claims.Email)
}

func TestVerify_Rejected(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_UpstreamFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"5xx": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		},
		"missing user id": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"email":"x@y.z"}`))
		},
		"bad json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			v := newProvider(t, h)
			_, err := v.Verify(context.Background(), "tok")
			assert.ErrorIs(t, err, ErrUpstream)
		})
	}
}

func TestVerify_EmptyTokenAndConfig(t *testing.T) {
	v := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called")
	})
	_, err := v.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = NewVerifier(Config{BaseURL: "https://idp.example.com"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = NewVerifier(Config{BaseURL: "::bad", APIKey: "k"})
	assert.Error(t, err)
}
