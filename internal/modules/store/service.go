package store

import (
	"context"
	"errors"
	"strings"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines store registry business logic.
type Service interface {
	ListActive(ctx context.Context) ([]*Store, error)
	GetStore(ctx context.Context, id string) (*Store, error)
	CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error)
	UpdateStore(ctx context.Context, id string, req UpdateStoreRequest) (*Store, error)
	// DeactivateStore is a soft delete: the row stays, active becomes false.
	DeactivateStore(ctx context.Context, id string) error
	ReactivateStore(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	log  *zap.Logger
}

// NewService creates a new store service.
func NewService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) ListActive(ctx context.Context) ([]*Store, error) {
	stores, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "list stores")
	}
	return stores, nil
}

func (s *service) GetStore(ctx context.Context, id string) (*Store, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	st, err := s.repo.GetByID(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFoundf("store not found")
	}
	if err != nil {
		return nil, apperr.Wrap(err, "get store")
	}
	return st, nil
}

func (s *service) CreateStore(ctx context.Context, req CreateStoreRequest) (*Store, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validationf("name is required")
	}

	code := req.Code
	if code == "" {
		// The trimmed name: surrounding spaces never turn into leading or trailing dashes.
		code = name
	}
	code = NormalizeCode(code)

	taken, err := s.repo.CodeTaken(ctx, code, uuid.Nil)
	if err != nil {
		return nil, apperr.Wrap(err, "check store code")
	}
	if taken {
		return nil, apperr.Conflictf("code already exists")
	}

	st := &Store{
		ID:      uuid.New(),
		Name:    name,
		Code:    code,
		Address: strings.TrimSpace(req.Address),
		Phone:   strings.TrimSpace(req.Phone),
		Active:  true,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		// Another request claimed the code between the check and the insert.
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflictf("code already exists")
		}
		return nil, apperr.Wrap(err, "create store")
	}

	s.log.Info("store created", zap.String("store_id", st.ID.String()), zap.String("code", st.Code))
	return st, nil
}

func (s *service) UpdateStore(ctx context.Context, id string, req UpdateStoreRequest) (*Store, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validationf("name is required")
	}

	var code string
	if req.Code != "" {
		code = NormalizeCode(req.Code)
		taken, err := s.repo.CodeTaken(ctx, code, uid)
		if err != nil {
			return nil, apperr.Wrap(err, "check store code")
		}
		if taken {
			return nil, apperr.Conflictf("code already exists")
		}
	}

	st, err := s.repo.Update(ctx, uid, name, code)
	if err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflictf("code already exists")
		}
		return nil, apperr.Wrap(err, "update store")
	}
	return st, nil
}

func (s *service) DeactivateStore(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, uid, false); err != nil {
		return apperr.Wrap(err, "deactivate store")
	}
	s.log.Info("store deactivated", zap.String("store_id", uid.String()))
	return nil
}

func (s *service) ReactivateStore(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, uid, true); err != nil {
		return apperr.Wrap(err, "reactivate store")
	}
	s.log.Info("store reactivated", zap.String("store_id", uid.String()))
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid store id: %s", id)
	}
	return uid, nil
}
