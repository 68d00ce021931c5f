package audit

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"venture-hub/internal/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	entries []Entry
	err     error
}

func (r *testRepo) Append(_ context.Context, e Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *testRepo) ListByStartup(_ context.Context, startupID string, f Filter) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, e := range r.entries {
		if e.StartupID == startupID && (f.Section == "" || e.Section == f.Section) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AccessedAt.After(out[j].AccessedAt) })
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type testStartups map[string]string

func (s testStartups) FounderOf(_ context.Context, id string) (string, error) {
	f, ok := s[id]
	if !ok {
		return "", errors.New("not found")
	}
	return f, nil
}

func newTestLog(repo *testRepo, clock *time.Time) *Log {
	return NewLog(repo, testStartups{"acme": "maria"}).WithClock(func() time.Time { return *clock })
}

func TestRecord(t *testing.T) {
	repo := &testRepo{}
	clock := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	l := newTestLog(repo, &clock)

	e, err := l.Record(context.Background(), RecordInput{
		InvestorUserID: "ana",
		StartupID:      "acme",
		Section:        access.SectionFinancials,
		IPAddress:      " 10.0.0.7 ",
		UserAgent:      strings.Repeat("a", 600),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, clock, e.AccessedAt)
	assert.Equal(t, "10.0.0.7", e.IPAddress)
	assert.Len(t, e.UserAgent, 512)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, e, repo.entries[0])
}

func TestRecord_NoDedup(t *testing.T) {
	repo := &testRepo{}
	clock := time.Now()
	l := newTestLog(repo, &clock)

	in := RecordInput{InvestorUserID: "ana", StartupID: "acme", Section: access.SectionNews}
	for i := 0; i < 3; i++ {
		_, err := l.Record(context.Background(), in)
		require.NoError(t, err)
	}
	assert.Len(t, repo.entries, 3)
}

func TestRecord_Invalid(t *testing.T) {
	clock := time.Now()
	l := newTestLog(&testRepo{}, &clock)

	for _, in := range []RecordInput{
		{StartupID: "acme", Section: access.SectionNews},
		{InvestorUserID: "ana", Section: access.SectionNews},
		{InvestorUserID: "ana", StartupID: "acme", Section: "cap_table"},
	} {
		_, err := l.Record(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestRecord_StorageErrorWrapped(t *testing.T) {
	boom := errors.New("disk full")
	clock := time.Now()
	l := newTestLog(&testRepo{err: boom}, &clock)

	_, err := l.Record(context.Background(), RecordInput{InvestorUserID: "ana", StartupID: "acme", Section: access.SectionPeople})
	assert.ErrorIs(t, err, boom)
}

func TestListByStartup(t *testing.T) {
	repo := &testRepo{}
	clock := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	l := newTestLog(repo, &clock)
	ctx := context.Background()

	for _, s := range []access.Section{access.SectionFinancials, access.SectionPeople, access.SectionFinancials} {
		clock = clock.Add(time.Minute)
		_, err := l.Record(ctx, RecordInput{InvestorUserID: "ana", StartupID: "acme", Section: s})
		require.NoError(t, err)
	}

	all, err := l.ListByStartup(ctx, "acme", "maria", Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].AccessedAt.After(all[2].AccessedAt))

	fin, err := l.ListByStartup(ctx, "acme", "maria", Filter{Section: access.SectionFinancials, Limit: 1})
	require.NoError(t, err)
	require.Len(t, fin, 1)
	assert.Equal(t, clock, fin[0].AccessedAt)

	_, err = l.ListByStartup(ctx, "acme", "ana", Filter{})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = l.ListByStartup(ctx, "globex", "maria", Filter{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = l.ListByStartup(ctx, "acme", "maria", Filter{Section: "cap_table"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByStartup_LimitClamped(t *testing.T) {
	repo := &testRepo{}
	clock := time.Now()
	l := newTestLog(repo, &clock)

	for i := 0; i < MaxLimit+5; i++ {
		repo.entries = append(repo.entries, Entry{StartupID: "acme", Section: access.SectionNews, AccessedAt: clock.Add(time.Duration(i) * time.Second)})
	}

	got, err := l.ListByStartup(context.Background(), "acme", "maria", Filter{Limit: 10_000})
	require.NoError(t, err)
	assert.Len(t, got, MaxLimit)

	got, err = l.ListByStartup(context.Background(), "acme", "maria", Filter{})
	require.NoError(t, err)
	assert.Len(t, got, DefaultLimit)
}
