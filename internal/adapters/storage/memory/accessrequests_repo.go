package memory

import (
	"context"
	"errors"
	"sync"

	"venture-hub/internal/domain/accessrequests"
)

type pairKey struct {
	investor string
	startup  string
}

type accessRequestsRepo struct {
	mu     sync.RWMutex
	byID   map[string]accessrequests.Request
	byPair map[pairKey]string
}

func NewAccessRequestsRepo() accessrequests.Repository {
	return &accessRequestsRepo{
		byID:   make(map[string]accessrequests.Request),
		byPair: make(map[pairKey]string),
	}
}

func (r *accessRequestsRepo) Create(ctx context.Context, req accessrequests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(req)
}

func (r *accessRequestsRepo) Update(ctx context.Context, req accessrequests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(req)
}

func (r *accessRequestsRepo) GetByID(ctx context.Context, id string) (accessrequests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getByID(id)
}

func (r *accessRequestsRepo) GetByPair(ctx context.Context, investorUserID, startupID string) (accessrequests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getByPair(investorUserID, startupID)
}

func (r *accessRequestsRepo) ListByStartup(ctx context.Context, startupID string) ([]accessrequests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(req accessrequests.Request) bool { return req.StartupID == startupID }), nil
}

func (r *accessRequestsRepo) ListByInvestor(ctx context.Context, investorUserID string) ([]accessrequests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(req accessrequests.Request) bool { return req.InvestorUserID == investorUserID }), nil
}

// InTx toma el lock de escritura durante todo fn. Si fn falla se restaura el snapshot,
// así que una mutación a medias nunca queda visible.
func (r *accessRequestsRepo) InTx(ctx context.Context, fn func(ctx context.Context, tx accessrequests.Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID := make(map[string]accessrequests.Request, len(r.byID))
	for k, v := range r.byID {
		byID[k] = v
	}
	byPair := make(map[pairKey]string, len(r.byPair))
	for k, v := range r.byPair {
		byPair[k] = v
	}

	if err := fn(ctx, lockedAccessRequests{r}); err != nil {
		r.byID = byID
		r.byPair = byPair
		return err
	}
	return nil
}

func (r *accessRequestsRepo) create(req accessrequests.Request) error {
	if req.ID == "" {
		return errors.New("request id required")
	}
	if _, exists := r.byID[req.ID]; exists {
		return errors.New("request already exists")
	}
	key := pairKey{req.InvestorUserID, req.StartupID}
	if _, exists := r.byPair[key]; exists {
		return accessrequests.ErrDuplicate
	}
	r.byID[req.ID] = req
	r.byPair[key] = req.ID
	return nil
}

func (r *accessRequestsRepo) update(req accessrequests.Request) error {
	cur, exists := r.byID[req.ID]
	if !exists {
		return accessrequests.ErrNotFound
	}
	// el par (investor, startup) es inmutable
	req.InvestorUserID = cur.InvestorUserID
	req.StartupID = cur.StartupID
	r.byID[req.ID] = req
	return nil
}

func (r *accessRequestsRepo) getByID(id string) (accessrequests.Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return accessrequests.Request{}, accessrequests.ErrNotFound
	}
	return req, nil
}

func (r *accessRequestsRepo) getByPair(investorUserID, startupID string) (accessrequests.Request, error) {
	id, ok := r.byPair[pairKey{investorUserID, startupID}]
	if !ok {
		return accessrequests.Request{}, accessrequests.ErrNotFound
	}
	return r.getByID(id)
}

func (r *accessRequestsRepo) list(match func(accessrequests.Request) bool) []accessrequests.Request {
	out := make([]accessrequests.Request, 0)
	for _, req := range r.byID {
		if match(req) {
			out = append(out, req)
		}
	}
	return out
}

// lockedAccessRequests opera sin tomar el lock: solo existe dentro de InTx.
type lockedAccessRequests struct {
	r *accessRequestsRepo
}

func (t lockedAccessRequests) Create(_ context.Context, req accessrequests.Request) error {
	return t.r.create(req)
}

func (t lockedAccessRequests) Update(_ context.Context, req accessrequests.Request) error {
	return t.r.update(req)
}

func (t lockedAccessRequests) GetByID(_ context.Context, id string) (accessrequests.Request, error) {
	return t.r.getByID(id)
}

func (t lockedAccessRequests) GetByPair(_ context.Context, investorUserID, startupID string) (accessrequests.Request, error) {
	return t.r.getByPair(investorUserID, startupID)
}

func (t lockedAccessRequests) ListByStartup(_ context.Context, startupID string) ([]accessrequests.Request, error) {
	return t.r.list(func(req accessrequests.Request) bool { return req.StartupID == startupID }), nil
}

func (t lockedAccessRequests) ListByInvestor(_ context.Context, investorUserID string) ([]accessrequests.Request, error) {
	return t.r.list(func(req accessrequests.Request) bool { return req.InvestorUserID == investorUserID }), nil
}

// InTx anidado reutiliza la transacción en curso.
func (t lockedAccessRequests) InTx(ctx context.Context, fn func(ctx context.Context, tx accessrequests.Repository) error) error {
	return fn(ctx, t)
}
