package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfiles map[string]Profile

func (s stubProfiles) GetByUserID(_ context.Context, userID string) (Profile, error) {
	p, ok := s[userID]
	if !ok {
		return Profile{}, errors.New("not found")
	}
	return p, nil
}

type stubStartups map[string]string

func (s stubStartups) StartupIDOfFounder(_ context.Context, founderUserID string) (string, error) {
	id, ok := s[founderUserID]
	if !ok {
		return "", errors.New("not found")
	}
	return id, nil
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(
		stubProfiles{
			"founder-1":  {UserID: "founder-1", UserType: UserTypeFounder},
			"investor-1": {UserID: "investor-1", UserType: UserTypeInvestor},
		},
		stubStartups{"founder-1": "startup-1"},
	)
	ctx := context.Background()

	t.Run("anonymous", func(t *testing.T) {
		ac := r.Resolve(ctx, "  ")
		assert.False(t, ac.Authenticated())
		assert.Equal(t, UserType(""), ac.Role())
	})

	t.Run("user without profile", func(t *testing.T) {
		ac := r.Resolve(ctx, "ghost")
		assert.True(t, ac.Authenticated())
		assert.False(t, ac.HasProfile())
		assert.False(t, ac.IsInvestor())
	})

	t.Run("founder gets owned startup", func(t *testing.T) {
		ac := r.Resolve(ctx, "founder-1")
		require.True(t, ac.HasProfile())
		assert.True(t, ac.IsFounder())
		assert.Equal(t, "startup-1", ac.OwnedStartupID)
	})

	t.Run("investor", func(t *testing.T) {
		ac := r.Resolve(ctx, "investor-1")
		assert.True(t, ac.IsInvestor())
		assert.Empty(t, ac.OwnedStartupID)
	})
}

func TestParseUserType(t *testing.T) {
	ut, ok := ParseUserType(" Investor ")
	assert.True(t, ok)
	assert.Equal(t, UserTypeInvestor, ut)

	_, ok = ParseUserType("admin")
	assert.False(t, ok)
}
