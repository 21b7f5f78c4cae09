package paymentmethod

import (
	"context"
	"errors"
	"sort"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"go.uber.org/zap"
)

// Service defines payment method lookups.
type Service interface {
	// ListActive returns active methods sorted by label ascending.
	ListActive(ctx context.Context) ([]*PaymentMethod, error)
	// IsActive reports whether code names an active payment method.
	IsActive(ctx context.Context, code string) (bool, error)
}

type service struct {
	repo  Repository
	cache Cache
	log   *zap.Logger
}

func NewService(repo Repository, cache Cache, log *zap.Logger) Service {
	if cache == nil {
		cache = NewNoopCache()
	}
	return &service{repo: repo, cache: cache, log: log}
}

func (s *service) ListActive(ctx context.Context) ([]*PaymentMethod, error) {
	methods, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("payment method cache read failed", zap.Error(err))
	}
	if ok {
		return activeByLabel(methods), nil
	}

	methods, err = s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "list payment methods")
	}
	methods = activeByLabel(methods)

	if err := s.cache.Set(ctx, methods); err != nil {
		s.log.Warn("payment method cache write failed", zap.Error(err))
	}
	return methods, nil
}

func (s *service) IsActive(ctx context.Context, code string) (bool, error) {
	m, err := s.repo.GetByCode(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Wrap(err, "get payment method")
	}
	return m.Active, nil
}

func activeByLabel(in []*PaymentMethod) []*PaymentMethod {
	out := make([]*PaymentMethod, 0, len(in))
	for _, m := range in {
		if m.Active {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
