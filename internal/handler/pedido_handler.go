package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"loja-api/internal/model"
	"loja-api/internal/service"

	"github.com/rs/zerolog"
)

// PedidoHandler handles order-related HTTP requests.
type PedidoHandler struct {
	service service.PedidoService
	logger  zerolog.Logger
}

// NewPedidoHandler creates a new order handler.
func NewPedidoHandler(service service.PedidoService, logger zerolog.Logger) *PedidoHandler {
	return &PedidoHandler{
		service: service,
		logger:  logger.With().Str("handler", "pedido").Logger(),
	}
}

// List handles GET /api/pedidos requests. An optional usuarioId query
// parameter narrows the listing to one user's orders.
func (h *PedidoHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		pedidos []model.Pedido
		err     error
	)

	if usuarioIDStr := r.URL.Query().Get("usuarioId"); usuarioIDStr != "" {
		usuarioID, parseErr := strconv.ParseInt(usuarioIDStr, 10, 64)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "Parâmetro usuarioId inválido", h.logger)
			return
		}
		pedidos, err = h.service.GetByUsuarioID(r.Context(), usuarioID)
	} else {
		pedidos, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeList(w, pedidos, len(pedidos))
}

// Get handles GET /api/pedidos/{id} requests.
func (h *PedidoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	pedido, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, pedido)
}

// Create handles POST /api/pedidos requests.
func (h *PedidoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreatePedidoParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", h.logger)
		return
	}

	pedido, err := h.service.Create(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, "Pedido criado com sucesso", pedido)
}

// Update handles PUT /api/pedidos/{id} requests.
func (h *PedidoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	var params model.UpdatePedidoParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", h.logger)
		return
	}

	pedido, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Pedido atualizado com sucesso", pedido)
}

// Delete handles DELETE /api/pedidos/{id} requests.
func (h *PedidoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Pedido deletado com sucesso", nil)
}
