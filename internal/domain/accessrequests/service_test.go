package accessrequests

import (
	"context"
	"errors"
	"testing"
	"time"

	"venture-hub/internal/identity"
	"venture-hub/internal/ports/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Request

	// duplicateOnce simula otro request que insertó el par entre nuestro SELECT y el INSERT.
	duplicateOnce *Request
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Request{}}
}

func (r *testRepo) Create(ctx context.Context, req Request) error {
	if r.duplicateOnce != nil {
		winner := *r.duplicateOnce
		r.duplicateOnce = nil
		r.byID[winner.ID] = winner
		return ErrDuplicate
	}
	for _, cur := range r.byID {
		if cur.InvestorUserID == req.InvestorUserID && cur.StartupID == req.StartupID {
			return ErrDuplicate
		}
	}
	r.byID[req.ID] = req
	return nil
}

func (r *testRepo) Update(ctx context.Context, req Request) error {
	if _, ok := r.byID[req.ID]; !ok {
		return ErrNotFound
	}
	r.byID[req.ID] = req
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (r *testRepo) GetByPair(ctx context.Context, investorUserID, startupID string) (Request, error) {
	for _, req := range r.byID {
		if req.InvestorUserID == investorUserID && req.StartupID == startupID {
			return req, nil
		}
	}
	return Request{}, ErrNotFound
}

func (r *testRepo) ListByStartup(ctx context.Context, startupID string) ([]Request, error) {
	out := make([]Request, 0)
	for _, req := range r.byID {
		if req.StartupID == startupID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *testRepo) ListByInvestor(ctx context.Context, investorUserID string) ([]Request, error) {
	out := make([]Request, 0)
	for _, req := range r.byID {
		if req.InvestorUserID == investorUserID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *testRepo) InTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error {
	return fn(ctx, r)
}

type testStartups map[string]string // startupID -> founderUserID

func (s testStartups) FounderOf(_ context.Context, startupID string) (string, error) {
	f, ok := s[startupID]
	if !ok {
		return "", errors.New("startup not found")
	}
	return f, nil
}

type recordingPublisher struct {
	events []notify.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e notify.Event) error {
	p.events = append(p.events, e)
	return p.err
}

// -------------------------
// Helpers
// -------------------------

const (
	acme    = "startup-acme"
	founder = "founder-1"
)

type fixture struct {
	svc   *Service
	repo  *testRepo
	pub   *recordingPublisher
	clock time.Time
}

func newFixture() *fixture {
	f := &fixture{
		repo:  newTestRepo(),
		pub:   &recordingPublisher{},
		clock: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.repo, testStartups{acme: founder}).
		WithPublisher(f.pub).
		WithClock(func() time.Time { return f.clock })
	return f
}

func (f *fixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

func investor(id string) identity.AuthContext {
	return identity.AuthContext{
		UserID:  id,
		Profile: &identity.Profile{UserID: id, UserType: identity.UserTypeInvestor},
	}
}

func withRole(id string, ut identity.UserType) identity.AuthContext {
	return identity.AuthContext{
		UserID:  id,
		Profile: &identity.Profile{UserID: id, UserType: ut},
	}
}

func ptr(t time.Time) *time.Time { return &t }

// -------------------------
// Submit
// -------------------------

func TestSubmit_CreatesPending(t *testing.T) {
	f := newFixture()

	r, err := f.svc.Submit(context.Background(), investor("ana"), acme, "  Interested in Series A.  ")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, "Interested in Series A.", r.Message)
	assert.Equal(t, f.clock, r.RequestedAt)
	assert.Nil(t, r.ReviewedAt)
	assert.Nil(t, r.ExpiresAt)
	assert.Len(t, f.repo.byID, 1)

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, notify.EventAccessRequested, f.pub.events[0].Type)
	assert.Equal(t, founder, f.pub.events[0].FounderUserID)
}

func TestSubmit_TwiceWhilePendingIsNoop(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, investor("ana"), acme, "first")
	require.NoError(t, err)

	f.advance(time.Minute)
	second, err := f.svc.Submit(ctx, investor("ana"), acme, "second")
	require.ErrorIs(t, err, ErrAlreadyPending)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.RequestedAt, second.RequestedAt)
	assert.Equal(t, "first", f.repo.byID[first.ID].Message)
	assert.Len(t, f.repo.byID, 1)
}

func TestSubmit_ValidationLeavesLedgerUntouched(t *testing.T) {
	cases := []struct {
		name    string
		actor   identity.AuthContext
		startup string
		message string
		want    error
	}{
		{"empty message", investor("ana"), acme, "   ", ErrInvalidInput},
		{"message too long", investor("ana"), acme, string(make([]rune, MaxMessageLength+1)), ErrInvalidInput},
		{"advisor", withRole("adv", identity.UserTypeAdvisor), acme, "hi", ErrNotInvestor},
		{"founder", withRole(founder, identity.UserTypeFounder), acme, "hi", ErrNotInvestor},
		{"no profile", identity.AuthContext{UserID: "ghost"}, acme, "hi", ErrNotInvestor},
		{"anonymous", identity.Anonymous, acme, "hi", ErrNotInvestor},
		{"unknown startup", investor("ana"), "nope", "hi", ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.Submit(context.Background(), tc.actor, tc.startup, tc.message)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, f.repo.byID)
			assert.Empty(t, f.pub.events)
		})
	}
}

func TestSubmit_MessageAtLimitAccepted(t *testing.T) {
	f := newFixture()
	msg := make([]rune, MaxMessageLength)
	for i := range msg {
		msg[i] = 'ñ'
	}
	_, err := f.svc.Submit(context.Background(), investor("ana"), acme, string(msg))
	assert.NoError(t, err)
}

func TestSubmit_ActiveApprovalIsNoop(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, r.ID, founder, ReviewInput{})
	require.NoError(t, err)

	got, err := f.svc.Submit(ctx, investor("ana"), acme, "again")
	require.ErrorIs(t, err, ErrAlreadyActive)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, StatusApproved, f.repo.byID[r.ID].Status)
}

func TestSubmit_ResubmitAfterRejectRevokeOrExpiry(t *testing.T) {
	cases := map[string]func(f *fixture, id string){
		"rejected": func(f *fixture, id string) {
			_, err := f.svc.Reject(context.Background(), id, founder, "not now")
			require.NoError(t, err)
		},
		"revoked": func(f *fixture, id string) {
			_, err := f.svc.Approve(context.Background(), id, founder, ReviewInput{})
			require.NoError(t, err)
			_, err = f.svc.Revoke(context.Background(), id, founder)
			require.NoError(t, err)
		},
		"expired": func(f *fixture, id string) {
			_, err := f.svc.Approve(context.Background(), id, founder, ReviewInput{ExpiresAt: ptr(f.clock.Add(time.Hour))})
			require.NoError(t, err)
			f.advance(2 * time.Hour)
		},
	}

	for name, settle := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()

			r, err := f.svc.Submit(ctx, investor("ana"), acme, "first")
			require.NoError(t, err)
			settle(f, r.ID)

			f.advance(time.Minute)
			again, err := f.svc.Submit(ctx, investor("ana"), acme, "second")
			require.NoError(t, err)

			assert.Equal(t, r.ID, again.ID)
			assert.Equal(t, StatusPending, again.Status)
			assert.Equal(t, "second", again.Message)
			assert.Equal(t, f.clock, again.RequestedAt)
			assert.Empty(t, again.ReviewedBy)
			assert.Empty(t, again.ReviewMessage)
			assert.Nil(t, again.ReviewedAt)
			assert.Nil(t, again.ExpiresAt)
			assert.Nil(t, again.RevokedAt)
			assert.Len(t, f.repo.byID, 1)
		})
	}
}

func TestSubmit_RetriesOnDuplicate(t *testing.T) {
	f := newFixture()
	winner := Request{
		ID:             "winner",
		InvestorUserID: "ana",
		StartupID:      acme,
		Status:         StatusPending,
		Message:        "raced",
		RequestedAt:    f.clock,
		UpdatedAt:      f.clock,
	}
	f.repo.duplicateOnce = &winner

	got, err := f.svc.Submit(context.Background(), investor("ana"), acme, "mine")
	require.ErrorIs(t, err, ErrAlreadyPending)
	assert.Equal(t, "winner", got.ID)
	assert.Len(t, f.repo.byID, 1)
}

// -------------------------
// Review
// -------------------------

func TestApprove_SetsReviewFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)

	f.advance(time.Hour)
	exp := f.clock.Add(30 * 24 * time.Hour)
	got, err := f.svc.Approve(ctx, r.ID, founder, ReviewInput{Message: " welcome ", ExpiresAt: &exp})
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, founder, got.ReviewedBy)
	assert.Equal(t, "welcome", got.ReviewMessage)
	require.NotNil(t, got.ReviewedAt)
	assert.Equal(t, f.clock, *got.ReviewedAt)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, got.ExpiresAt.Equal(exp))
	assert.False(t, got.ExpiresAt.Before(*got.ReviewedAt))
	assert.True(t, got.IsActive(f.clock))

	require.Len(t, f.pub.events, 2)
	assert.Equal(t, notify.EventAccessApproved, f.pub.events[1].Type)
}

func TestApprove_RejectsPastExpiry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, r.ID, founder, ReviewInput{ExpiresAt: ptr(f.clock.Add(-time.Second))})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, StatusPending, f.repo.byID[r.ID].Status)
}

func TestReview_OnlyFounder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, r.ID, "someone-else", ReviewInput{})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.svc.Reject(ctx, r.ID, "ana", "")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, StatusPending, f.repo.byID[r.ID].Status)
}

func TestReview_UnknownIDLooksLikeForeignRequest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)

	for _, id := range []string{r.ID, "missing"} {
		_, err = f.svc.Approve(ctx, id, "mallory", ReviewInput{})
		assert.ErrorIs(t, err, ErrForbidden, id)
		_, err = f.svc.Reject(ctx, id, "mallory", "")
		assert.ErrorIs(t, err, ErrForbidden, id)
		_, err = f.svc.Revoke(ctx, id, "mallory")
		assert.ErrorIs(t, err, ErrForbidden, id)
	}

	_, err = f.svc.Approve(ctx, "missing", founder, ReviewInput{})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, StatusPending, f.repo.byID[r.ID].Status)
}

func TestStateMachine(t *testing.T) {
	type step func(s *Service, id string) error
	approve := func(s *Service, id string) error { _, err := s.Approve(context.Background(), id, founder, ReviewInput{}); return err }
	reject := func(s *Service, id string) error { _, err := s.Reject(context.Background(), id, founder, ""); return err }
	revoke := func(s *Service, id string) error { _, err := s.Revoke(context.Background(), id, founder); return err }

	cases := []struct {
		name  string
		setup []step
		try   step
		want  error
		final Status
	}{
		{"pending -> approved", nil, approve, nil, StatusApproved},
		{"pending -> rejected", nil, reject, nil, StatusRejected},
		{"pending -> revoked not allowed", nil, revoke, ErrBadState, StatusPending},
		{"approved -> revoked", []step{approve}, revoke, nil, StatusRevoked},
		{"approved -> rejected not allowed", []step{approve}, reject, ErrBadState, StatusApproved},
		{"approved -> approved not allowed", []step{approve}, approve, ErrBadState, StatusApproved},
		{"rejected -> approved not allowed", []step{reject}, approve, ErrBadState, StatusRejected},
		{"rejected -> revoked not allowed", []step{reject}, revoke, ErrBadState, StatusRejected},
		{"revoked -> approved not allowed", []step{approve, revoke}, approve, ErrBadState, StatusRevoked},
		{"revoked -> revoked not allowed", []step{approve, revoke}, revoke, ErrBadState, StatusRevoked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			r, err := f.svc.Submit(context.Background(), investor("ana"), acme, "hi")
			require.NoError(t, err)
			for _, s := range tc.setup {
				require.NoError(t, s(f.svc, r.ID))
			}

			err = tc.try(f.svc, r.ID)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
			assert.Equal(t, tc.final, f.repo.byID[r.ID].Status)
		})
	}
}

func TestRevoke_ExpiredApprovalAndKeepsApprovalTime(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)
	approved, err := f.svc.Approve(ctx, r.ID, founder, ReviewInput{ExpiresAt: ptr(f.clock.Add(time.Hour))})
	require.NoError(t, err)

	f.advance(3 * time.Hour)
	got, err := f.svc.Revoke(ctx, r.ID, founder)
	require.NoError(t, err)

	assert.Equal(t, StatusRevoked, got.Status)
	assert.Equal(t, *approved.ReviewedAt, *got.ReviewedAt)
	require.NotNil(t, got.RevokedAt)
	assert.Equal(t, f.clock, *got.RevokedAt)
	assert.False(t, got.IsActive(f.clock))
}

func TestIsActive_ExpiryBoundary(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := Request{Status: StatusApproved, ExpiresAt: ptr(now)}

	assert.True(t, r.IsActive(now))
	assert.True(t, r.IsActive(now.Add(-time.Nanosecond)))
	assert.False(t, r.IsActive(now.Add(time.Nanosecond)))
	assert.True(t, Request{Status: StatusApproved}.IsActive(now.Add(100*365*24*time.Hour)))
	assert.False(t, Request{Status: StatusPending}.IsActive(now))
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	f := newFixture()
	f.pub.err = errors.New("broker down")

	r, err := f.svc.Submit(context.Background(), investor("ana"), acme, "hi")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, f.repo.byID[r.ID].Status)
}

// -------------------------
// Reads
// -------------------------

func TestGet_OnlyParties(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	r, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, r.ID, "ana")
	assert.NoError(t, err)
	_, err = f.svc.Get(ctx, r.ID, founder)
	assert.NoError(t, err)
	_, err = f.svc.Get(ctx, r.ID, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByStartup_FounderOnlyFilteredNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)
	f.advance(time.Minute)
	b, err := f.svc.Submit(ctx, investor("bob"), acme, "hi")
	require.NoError(t, err)
	f.advance(time.Minute)
	c, err := f.svc.Submit(ctx, investor("cid"), acme, "hi")
	require.NoError(t, err)
	_, err = f.svc.Reject(ctx, b.ID, founder, "")
	require.NoError(t, err)

	all, err := f.svc.ListByStartup(ctx, acme, founder, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	pending, err := f.svc.ListByStartup(ctx, acme, founder, []Status{StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = f.svc.ListByStartup(ctx, acme, "ana", nil)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.svc.ListByStartup(ctx, "nope", founder, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByInvestor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, investor("ana"), acme, "hi")
	require.NoError(t, err)

	mine, err := f.svc.ListByInvestor(ctx, "ana")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := f.svc.ListByInvestor(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, others)
}
