package paymentmethod

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRepo struct {
	methods []*PaymentMethod
	err     error
	calls   int
}

func (r *stubRepo) ListActive(ctx context.Context) ([]*PaymentMethod, error) {
	r.calls++
	return r.methods, r.err
}

func (r *stubRepo) GetByCode(ctx context.Context, code string) (*PaymentMethod, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.methods {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

func pm(code, label string, active bool) *PaymentMethod {
	return &PaymentMethod{ID: uuid.New(), Code: code, Label: label, Active: active}
}

func labels(methods []*PaymentMethod) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = m.Label
	}
	return out
}

func TestListActive_FiltersAndSorts(t *testing.T) {
	repo := &stubRepo{methods: []*PaymentMethod{
		pm("pix", "PIX", true),
		pm("crediario", "Crediario", false),
		pm("dinheiro", "Dinheiro", true),
		pm("cartao_credito", "Cartao de Credito", true),
	}}
	svc := NewService(repo, nil, zap.NewNop())

	methods, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Cartao de Credito", "Dinheiro", "PIX"}, labels(methods))
}

func TestListActive_StorageError(t *testing.T) {
	svc := NewService(&stubRepo{err: errors.New("timeout")}, nil, zap.NewNop())

	_, err := svc.ListActive(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestListActive_UsesRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := &stubRepo{methods: []*PaymentMethod{pm("pix", "PIX", true), pm("dinheiro", "Dinheiro", true)}}
	svc := NewService(repo, NewRedisCache(client, 5*time.Minute), zap.NewNop())
	ctx := context.Background()

	first, err := svc.ListActive(ctx)
	require.NoError(t, err)
	second, err := svc.ListActive(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, labels(first), labels(second))
	assert.True(t, mr.Exists(activeListKey))

	mr.FastForward(6 * time.Minute)
	_, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestListActive_CacheDownFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	repo := &stubRepo{methods: []*PaymentMethod{pm("pix", "PIX", true)}}
	svc := NewService(repo, NewRedisCache(client, time.Minute), zap.NewNop())

	methods, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, methods, 1)
}

func TestIsActive(t *testing.T) {
	repo := &stubRepo{methods: []*PaymentMethod{pm("pix", "PIX", true), pm("crediario", "Crediario", false)}}
	svc := NewService(repo, nil, zap.NewNop())
	ctx := context.Background()

	ok, err := svc.IsActive(ctx, "pix")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsActive(ctx, "crediario")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsActive(ctx, "cheque")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgresListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id,code,label,active FROM payment_methods WHERE active=true ORDER BY label ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "label", "active"}).
			AddRow(uuid.NewString(), "dinheiro", "Dinheiro", true).
			AddRow(uuid.NewString(), "pix", "PIX", true))

	methods, err := NewPostgresRepository(db).ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dinheiro", "PIX"}, labels(methods))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_List(t *testing.T) {
	repo := &stubRepo{methods: []*PaymentMethod{pm("pix", "PIX", true), pm("dinheiro", "Dinheiro", true)}}
	router := chi.NewRouter()
	NewHandler(NewService(repo, nil, zap.NewNop()), zap.NewNop()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payment-methods", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"Dinheiro"`)

	repo.err = errors.New("boom")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payment-methods", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
