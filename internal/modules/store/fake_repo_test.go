package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// fakeRepo is an in-memory Repository that enforces the same unique code
// constraint as the stores table.
type fakeRepo struct {
	mu     sync.Mutex
	stores map[uuid.UUID]*Store

	// skipCodeCheck makes CodeTaken always answer false, simulating a
	// concurrent insert that lands after the pre-check.
	skipCodeCheck bool
	err           error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stores: map[uuid.UUID]*Store{}}
}

func (f *fakeRepo) seed(name, code string, active bool) *Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &Store{ID: uuid.New(), Name: name, Code: code, Active: active, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.stores[s.ID] = s
	return s
}

func (f *fakeRepo) ListActive(ctx context.Context) ([]*Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []*Store{}
	for _, s := range f.stores {
		if s.Active {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.stores[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) CodeTaken(ctx context.Context, code string, exclude uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if f.skipCodeCheck {
		return false, nil
	}
	return f.codeTakenLocked(code, exclude), nil
}

func (f *fakeRepo) codeTakenLocked(code string, exclude uuid.UUID) bool {
	for id, s := range f.stores {
		if s.Code == code && id != exclude {
			return true
		}
	}
	return false
}

func (f *fakeRepo) Create(ctx context.Context, s *Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.codeTakenLocked(s.Code, uuid.Nil) {
		return &pq.Error{Code: "23505", Constraint: "stores_code_key"}
	}
	s.CreatedAt, s.UpdatedAt = time.Now(), time.Now()
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, name, code string) (*Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.stores[id]
	if !ok {
		return nil, ErrNotFound
	}
	if code != "" && f.codeTakenLocked(code, id) {
		return nil, &pq.Error{Code: "23505", Constraint: "stores_code_key"}
	}
	s.Name = name
	if code != "" {
		s.Code = code
	}
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	s, ok := f.stores[id]
	if !ok {
		return ErrNotFound
	}
	s.Active = active
	return nil
}
