package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
)

var errStoreDown = errors.New("connection reset by peer")

// memStore backs fake repositories and a fake Transactor. RunInTx snapshots
// state and restores it when fn fails.
type memStore struct {
	mu        sync.Mutex
	operators map[uuid.UUID]models.Operator
	profiles  []models.RequirementProfile

	// failOnRequirementCreate makes the n-th profile insert (1-based) fail.
	failOnRequirementCreate int
	requirementCreates      int

	listErr error
}

func newMemStore() *memStore {
	return &memStore{operators: map[uuid.UUID]models.Operator{}}
}

func (s *memStore) operatorRepo() repositories.OperatorRepository {
	return &fakeOperatorRepo{s: s}
}

func (s *memStore) requirementRepo() repositories.RequirementProfileRepository {
	return &fakeRequirementRepo{s: s}
}

func (s *memStore) RunInTx(ctx context.Context, fn func(repos *repositories.Repositories) error) error {
	s.mu.Lock()
	opSnap := make(map[uuid.UUID]models.Operator, len(s.operators))
	for k, v := range s.operators {
		opSnap[k] = v
	}
	profSnap := append([]models.RequirementProfile(nil), s.profiles...)
	s.mu.Unlock()

	err := fn(&repositories.Repositories{Operators: s.operatorRepo(), Requirements: s.requirementRepo()})
	if err != nil {
		s.mu.Lock()
		s.operators = opSnap
		s.profiles = profSnap
		s.mu.Unlock()
	}
	return err
}

func (s *memStore) operatorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.operators)
}

func (s *memStore) profileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}

func (s *memStore) operatorByName(name string) *models.Operator {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.operators {
		if o.Name == name {
			o := o
			return &o
		}
	}
	return nil
}

func (s *memStore) profilesSnapshot() []models.RequirementProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RequirementProfile(nil), s.profiles...)
}

/* ------------------------------------------------------------------
   Operators
------------------------------------------------------------------ */

type fakeOperatorRepo struct {
	s *memStore
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

func (r *fakeOperatorRepo) nameTakenLocked(name string, except uuid.UUID) bool {
	for id, o := range r.s.operators {
		if id != except && o.Name == name {
			return true
		}
	}
	return false
}

func (r *fakeOperatorRepo) Create(_ context.Context, o *models.Operator) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTakenLocked(o.Name, uuid.Nil) {
		return uniqueViolation()
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	o.CreatedAt, o.UpdatedAt, o.RowVersion = now, now, 1
	r.s.operators[o.ID] = *o
	return nil
}

func (r *fakeOperatorRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Operator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.operators[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOperatorRepo) FindByName(_ context.Context, name string) (*models.Operator, error) {
	return r.s.operatorByName(strings.TrimSpace(name)), nil
}

func (r *fakeOperatorRepo) ListAll(_ context.Context) ([]*models.Operator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.listErr != nil {
		return nil, r.s.listErr
	}
	out := make([]*models.Operator, 0, len(r.s.operators))
	for _, o := range r.s.operators {
		o := o
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeOperatorRepo) Update(ctx context.Context, o *models.Operator) error {
	_, err := r.UpdateIfVersion(ctx, o, -1)
	return err
}

// UpdateIfVersion skips the version check when expected is negative.
func (r *fakeOperatorRepo) UpdateIfVersion(_ context.Context, o *models.Operator, expected int64) (pgconn.CommandTag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.operators[o.ID]
	if !ok || (expected >= 0 && cur.RowVersion != expected) {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	if r.nameTakenLocked(o.Name, o.ID) {
		return nil, uniqueViolation()
	}
	next := *o
	next.CreatedAt = cur.CreatedAt
	next.UpdatedAt = time.Now()
	next.RowVersion = cur.RowVersion + 1
	r.s.operators[o.ID] = next
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (r *fakeOperatorRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Operator) error) error {
	return repositories.WithRetry[*models.Operator](ctx, 3, id.String(),
		func(ctx context.Context, id string) (*models.Operator, error) {
			return r.GetByID(ctx, uuid.MustParse(id))
		},
		r.UpdateIfVersion,
		mutate,
	)
}

func (r *fakeOperatorRepo) Upsert(_ context.Context, f models.OperatorFields) (*models.Operator, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	for id, o := range r.s.operators {
		if o.Name != f.Name {
			continue
		}
		if f.Sector != nil {
			o.Sector = f.Sector
		}
		if f.Website != nil {
			o.Website = f.Website
		}
		if f.Notes != nil {
			o.Notes = f.Notes
		}
		o.UpdatedAt = now
		o.RowVersion++
		r.s.operators[id] = o
		return &o, false, nil
	}

	o := models.Operator{
		ID:        uuid.New(),
		Name:      f.Name,
		Sector:    f.Sector,
		Website:   f.Website,
		Notes:     f.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.RowVersion = 1
	r.s.operators[o.ID] = o
	return &o, true, nil
}

/* ------------------------------------------------------------------
   Requirement profiles
------------------------------------------------------------------ */

type fakeRequirementRepo struct {
	s *memStore
}

func (r *fakeRequirementRepo) Create(_ context.Context, p *models.RequirementProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.requirementCreates++
	if r.s.failOnRequirementCreate > 0 && r.s.requirementCreates == r.s.failOnRequirementCreate {
		return errStoreDown
	}
	if _, ok := r.s.operators[p.OperatorID]; !ok {
		return &pgconn.PgError{Code: "23503", Message: "foreign key violation"}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.profiles = append(r.s.profiles, *p)
	return nil
}

func (r *fakeRequirementRepo) joinedLocked(p models.RequirementProfile) *models.RequirementProfile {
	p.OperatorName = r.s.operators[p.OperatorID].Name
	return &p
}

func (r *fakeRequirementRepo) GetByID(_ context.Context, id uuid.UUID) (*models.RequirementProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.ID == id {
			return r.joinedLocked(p), nil
		}
	}
	return nil, nil
}

func (r *fakeRequirementRepo) ListAll(_ context.Context) ([]*models.RequirementProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.listErr != nil {
		return nil, r.s.listErr
	}
	out := make([]*models.RequirementProfile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		out = append(out, r.joinedLocked(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (r *fakeRequirementRepo) ListRecent(_ context.Context, limit int) ([]*models.RequirementProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.listErr != nil {
		return nil, r.s.listErr
	}
	out := make([]*models.RequirementProfile, 0, limit)
	for i := len(r.s.profiles) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.joinedLocked(r.s.profiles[i]))
	}
	return out, nil
}

func (r *fakeRequirementRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.profiles {
		if p.ID == id {
			r.s.profiles = append(r.s.profiles[:i], r.s.profiles[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

// staticProfiles serves a fixed profile list to the matching service.
type staticProfiles struct {
	fakeRequirementRepo
	list []*models.RequirementProfile
	err  error
}

func (s *staticProfiles) ListAll(context.Context) ([]*models.RequirementProfile, error) {
	return s.list, s.err
}

func (s *memStore) operatorNameOf(p models.RequirementProfile) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.operators[p.OperatorID].Name
}
