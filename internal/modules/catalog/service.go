package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"github.com/georgemunganga/lojas-backend/internal/money"
	"github.com/georgemunganga/lojas-backend/internal/modules/store"
	"github.com/georgemunganga/lojas-backend/internal/pagination"
	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, f ProductFilter, page pagination.Params) (*pagination.Page[*Product], error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
}

// ProductRequest holds the data for creating or replacing a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Active      *bool   `json:"active,omitempty"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (req ProductRequest) validate() (name, code string, price float64, err error) {
	name = strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", 0, apperr.Validationf("name is required")
	}
	price = money.Round(req.Price)
	if price < 0 {
		return "", "", 0, apperr.Validationf("price must not be negative")
	}
	if !money.Fits(price) {
		return "", "", 0, apperr.Validationf("price is too large")
	}
	code = req.Code
	if code == "" {
		code = name
	}
	return name, store.NormalizeCode(code), price, nil
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	name, code, price, err := req.validate()
	if err != nil {
		return nil, err
	}
	p := &Product{
		ID:          uuid.New(),
		Name:        name,
		Code:        code,
		Description: req.Description,
		Price:       price,
		Active:      true,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflictf("code already exists")
		}
		return nil, apperr.Wrap(err, "create product")
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid product id: %s", id)
	}
	p, err := s.repo.GetByID(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFoundf("product not found")
	}
	if err != nil {
		return nil, apperr.Wrap(err, "get product")
	}
	return p, nil
}

func (s *service) ListProducts(ctx context.Context, f ProductFilter, page pagination.Params) (*pagination.Page[*Product], error) {
	f.Search = strings.TrimSpace(f.Search)
	products, total, err := s.repo.List(ctx, f, page)
	if err != nil {
		return nil, apperr.Wrap(err, "list products")
	}
	return &pagination.Page[*Product]{Data: products, Pagination: pagination.NewMeta(page, total)}, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	name, code, price, err := req.validate()
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Code = code
	p.Description = req.Description
	p.Price = price
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.repo.Update(ctx, p); err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflictf("code already exists")
		}
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFoundf("product not found")
		}
		return nil, apperr.Wrap(err, "update product")
	}
	return p, nil
}
