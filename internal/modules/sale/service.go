package sale

import (
	"context"
	"errors"
	"strings"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"github.com/georgemunganga/lojas-backend/internal/money"
	"github.com/georgemunganga/lojas-backend/internal/modules/store"
	"github.com/georgemunganga/lojas-backend/internal/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreLookup resolves the store a sale is recorded against.
type StoreLookup interface {
	GetStore(ctx context.Context, id string) (*store.Store, error)
}

// PaymentMethodChecker reports whether a payment method may be used.
type PaymentMethodChecker interface {
	IsActive(ctx context.Context, code string) (bool, error)
}

// Service defines point-of-sale business logic.
type Service interface {
	RecordSale(ctx context.Context, req CreateSaleRequest) (*Sale, error)
	GetSale(ctx context.Context, id string) (*Sale, error)
	ListStoreSales(ctx context.Context, storeID string, page pagination.Params) (*pagination.Page[*Sale], error)
	CancelSale(ctx context.Context, id string) (*Sale, error)
}

type service struct {
	repo     Repository
	stores   StoreLookup
	payments PaymentMethodChecker
	log      *zap.Logger
}

func NewService(repo Repository, stores StoreLookup, payments PaymentMethodChecker, log *zap.Logger) Service {
	return &service{repo: repo, stores: stores, payments: payments, log: log}
}

func (s *service) RecordSale(ctx context.Context, req CreateSaleRequest) (*Sale, error) {
	if req.StoreID == "" {
		return nil, apperr.Validationf("store_id is required")
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, apperr.Validationf("invalid store_id: %s", req.StoreID)
	}
	total, discount := money.Round(req.Total), money.Round(req.Discount)
	if total <= 0 {
		return nil, apperr.Validationf("total must be greater than zero")
	}
	if !money.Fits(total) {
		return nil, apperr.Validationf("total is too large")
	}
	if discount < 0 || discount > total {
		return nil, apperr.Validationf("discount must be between zero and the sale total")
	}
	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		return nil, apperr.Validationf("payment_method is required")
	}

	st, err := s.stores.GetStore(ctx, storeID.String())
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return nil, apperr.Validationf("store not found")
		}
		return nil, err
	}
	if !st.Active {
		return nil, apperr.Validationf("store is inactive")
	}

	ok, err := s.payments.IsActive(ctx, method)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Validationf("payment method is not available: %s", method)
	}

	sale := &Sale{
		ID:            uuid.New(),
		StoreID:       storeID,
		PaymentMethod: method,
		Total:         total,
		Discount:      discount,
		Status:        StatusCompleted,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, apperr.Wrap(err, "record sale")
	}
	s.log.Info("sale recorded",
		zap.String("sale_id", sale.ID.String()),
		zap.String("store_id", storeID.String()),
		zap.Float64("total", sale.Total))
	return sale, nil
}

func (s *service) GetSale(ctx context.Context, id string) (*Sale, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid sale id: %s", id)
	}
	sale, err := s.repo.GetByID(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFoundf("sale not found")
	}
	if err != nil {
		return nil, apperr.Wrap(err, "get sale")
	}
	return sale, nil
}

func (s *service) ListStoreSales(ctx context.Context, storeID string, page pagination.Params) (*pagination.Page[*Sale], error) {
	if storeID == "" {
		return nil, apperr.Validationf("store_id is required")
	}
	uid, err := uuid.Parse(storeID)
	if err != nil {
		return nil, apperr.Validationf("invalid store_id: %s", storeID)
	}
	sales, total, err := s.repo.ListByStore(ctx, uid, page)
	if err != nil {
		return nil, apperr.Wrap(err, "list sales")
	}
	return &pagination.Page[*Sale]{Data: sales, Pagination: pagination.NewMeta(page, total)}, nil
}

func (s *service) CancelSale(ctx context.Context, id string) (*Sale, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status != StatusCompleted {
		return nil, apperr.Conflictf("only COMPLETED sales can be cancelled, current status: %s", sale.Status)
	}
	ok, err := s.repo.UpdateStatus(ctx, sale.ID, StatusCompleted, StatusCancelled)
	if err != nil {
		return nil, apperr.Wrap(err, "cancel sale")
	}
	if !ok {
		// Cancelled concurrently.
		return nil, apperr.Conflictf("only COMPLETED sales can be cancelled")
	}
	s.log.Info("sale cancelled", zap.String("sale_id", sale.ID.String()))
	return s.GetSale(ctx, id)
}
