package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loja-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProdutoService is a mock implementation of service.ProdutoService.
type MockProdutoService struct {
	mock.Mock
}

func (m *MockProdutoService) GetAll(ctx context.Context) ([]model.Produto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Produto), args.Error(1)
}

func (m *MockProdutoService) GetByCategoria(ctx context.Context, categoria string) ([]model.Produto, error) {
	args := m.Called(ctx, categoria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Produto), args.Error(1)
}

func (m *MockProdutoService) GetByID(ctx context.Context, id int64) (*model.Produto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Produto), args.Error(1)
}

func (m *MockProdutoService) Create(ctx context.Context, params model.CreateProdutoParams) (*model.Produto, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Produto), args.Error(1)
}

func (m *MockProdutoService) Update(ctx context.Context, id int64, params model.UpdateProdutoParams) (*model.Produto, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Produto), args.Error(1)
}

func (m *MockProdutoService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newProdutoRouter(svc *MockProdutoService) http.Handler {
	h := NewProdutoHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/api/produtos", h.List)
	r.Post("/api/produtos", h.Create)
	r.Get("/api/produtos/{id}", h.Get)
	r.Put("/api/produtos/{id}", h.Update)
	r.Delete("/api/produtos/{id}", h.Delete)
	return r
}

func TestProdutoHandler_List(t *testing.T) {
	t.Run("Unfiltered", func(t *testing.T) {
		svc := new(MockProdutoService)
		router := newProdutoRouter(svc)

		produtos := []model.Produto{{ID: 1, Nome: "Caderno", Preco: 10}}
		svc.On("GetAll", mock.Anything).Return(produtos, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/produtos", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, float64(1), body["count"])
		svc.AssertNotCalled(t, "GetByCategoria", mock.Anything, mock.Anything)
	})

	t.Run("Filtered by categoria", func(t *testing.T) {
		svc := new(MockProdutoService)
		router := newProdutoRouter(svc)

		produtos := []model.Produto{{ID: 2, Nome: "Caneta", Preco: 3}}
		svc.On("GetByCategoria", mock.Anything, "papelaria").Return(produtos, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/produtos?categoria=papelaria", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertNotCalled(t, "GetAll", mock.Anything)
		svc.AssertExpectations(t)
	})

	t.Run("Empty table", func(t *testing.T) {
		svc := new(MockProdutoService)
		router := newProdutoRouter(svc)

		svc.On("GetAll", mock.Anything).Return([]model.Produto{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/produtos", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(0), body["count"])
	})
}

func TestProdutoHandler_Create(t *testing.T) {
	t.Run("Created with zero estoque", func(t *testing.T) {
		svc := new(MockProdutoService)
		router := newProdutoRouter(svc)

		preco := 10.0
		estoque := 0
		created := &model.Produto{ID: 1, Nome: "Caderno", Preco: preco, Estoque: estoque}
		svc.On("Create", mock.Anything, model.CreateProdutoParams{
			Nome:    "Caderno",
			Preco:   &preco,
			Estoque: &estoque,
		}).Return(created, nil)

		payload := `{"nome":"Caderno","preco":10,"estoque":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, "Produto criado com sucesso", body["message"])
		svc.AssertExpectations(t)
	})

	t.Run("Negative preco", func(t *testing.T) {
		svc := new(MockProdutoService)
		router := newProdutoRouter(svc)

		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, model.NewValidationError("Preço deve ser maior que 0"))

		payload := `{"nome":"Caderno","preco":-5,"estoque":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeResponse(t, rec)
		assert.Equal(t, "Preço deve ser maior que 0", body["error"])
	})
}

func TestProdutoHandler_Get_NotFound(t *testing.T) {
	svc := new(MockProdutoService)
	router := newProdutoRouter(svc)

	svc.On("GetByID", mock.Anything, int64(99)).Return(nil, model.ErrProdutoNaoEncontrado)

	req := httptest.NewRequest(http.MethodGet, "/api/produtos/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Produto não encontrado", body["error"])
}

func TestProdutoHandler_Update(t *testing.T) {
	svc := new(MockProdutoService)
	router := newProdutoRouter(svc)

	estoque := 3
	updated := &model.Produto{ID: 1, Nome: "Caderno", Preco: 10, Estoque: estoque}
	svc.On("Update", mock.Anything, int64(1), model.UpdateProdutoParams{Estoque: &estoque}).
		Return(updated, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/produtos/1", strings.NewReader(`{"estoque":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Produto atualizado com sucesso", body["message"])
	svc.AssertExpectations(t)
}

func TestProdutoHandler_Delete_NotFound(t *testing.T) {
	svc := new(MockProdutoService)
	router := newProdutoRouter(svc)

	svc.On("Delete", mock.Anything, int64(99)).Return(model.ErrProdutoNaoEncontrado)

	req := httptest.NewRequest(http.MethodDelete, "/api/produtos/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
