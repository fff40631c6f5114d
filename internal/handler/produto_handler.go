package handler

import (
	"encoding/json"
	"net/http"

	"loja-api/internal/model"
	"loja-api/internal/service"

	"github.com/rs/zerolog"
)

// ProdutoHandler handles product-related HTTP requests.
type ProdutoHandler struct {
	service service.ProdutoService
	logger  zerolog.Logger
}

// NewProdutoHandler creates a new product handler.
func NewProdutoHandler(service service.ProdutoService, logger zerolog.Logger) *ProdutoHandler {
	return &ProdutoHandler{
		service: service,
		logger:  logger.With().Str("handler", "produto").Logger(),
	}
}

// List handles GET /api/produtos requests. An optional categoria query
// parameter narrows the listing to one category.
func (h *ProdutoHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		produtos []model.Produto
		err      error
	)

	if categoria := r.URL.Query().Get("categoria"); categoria != "" {
		produtos, err = h.service.GetByCategoria(r.Context(), categoria)
	} else {
		produtos, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeList(w, produtos, len(produtos))
}

// Get handles GET /api/produtos/{id} requests.
func (h *ProdutoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	produto, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, produto)
}

// Create handles POST /api/produtos requests.
func (h *ProdutoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateProdutoParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", h.logger)
		return
	}

	produto, err := h.service.Create(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, "Produto criado com sucesso", produto)
}

// Update handles PUT /api/produtos/{id} requests.
func (h *ProdutoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	var params model.UpdateProdutoParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", h.logger)
		return
	}

	produto, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Produto atualizado com sucesso", produto)
}

// Delete handles DELETE /api/produtos/{id} requests.
func (h *ProdutoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Produto deletado com sucesso", nil)
}
