package accessrequests

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venture-hub/internal/identity"
	"venture-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service, ac identity.AuthContext) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithAuth(req.Context(), ac)))
		})
	})
	RegisterRoutes(r, svc, nil)
	return r
}

// chunked: httptest.NewRequest deja ContentLength en -1 para readers que no conoce.
func chunked(body string) io.Reader {
	return io.NopCloser(strings.NewReader(body))
}

func TestReviewHandlers_ChunkedEmptyBody(t *testing.T) {
	for _, action := range []string{"approve", "reject"} {
		t.Run(action, func(t *testing.T) {
			f := newFixture()
			r, err := f.svc.Submit(context.Background(), investor("ana"), acme, "hi")
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/access-requests/"+r.ID+"/"+action, chunked(""))
			require.EqualValues(t, -1, req.ContentLength)
			rec := httptest.NewRecorder()
			newTestRouter(f.svc, withRole(founder, identity.UserTypeFounder)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestReviewHandlers_MalformedBody(t *testing.T) {
	f := newFixture()
	r, err := f.svc.Submit(context.Background(), investor("ana"), acme, "hi")
	require.NoError(t, err)

	for _, body := range []string{`{"review_message":`, `nope`} {
		req := httptest.NewRequest(http.MethodPost, "/access-requests/"+r.ID+"/approve", chunked(body))
		rec := httptest.NewRecorder()
		newTestRouter(f.svc, withRole(founder, identity.UserTypeFounder)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Equal(t, StatusPending, f.repo.byID[r.ID].Status)
}

func TestReviewHandlers_ForeignAndUnknownIDsAnswerAlike(t *testing.T) {
	f := newFixture()
	r, err := f.svc.Submit(context.Background(), investor("ana"), acme, "hi")
	require.NoError(t, err)

	mallory := newTestRouter(f.svc, withRole("mallory", identity.UserTypeFounder))
	for _, action := range []string{"approve", "reject", "revoke"} {
		var codes []int
		var bodies []string
		for _, id := range []string{r.ID, "missing"} {
			req := httptest.NewRequest(http.MethodPost, "/access-requests/"+id+"/"+action, nil)
			rec := httptest.NewRecorder()
			mallory.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
			bodies = append(bodies, rec.Body.String())
		}
		assert.Equal(t, []int{http.StatusForbidden, http.StatusForbidden}, codes, action)
		assert.Equal(t, bodies[0], bodies[1], action)
	}
	assert.Equal(t, StatusPending, f.repo.byID[r.ID].Status)
}
