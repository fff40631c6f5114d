package handler

import (
	"encoding/json"
	"net/http"

	"loja-api/internal/model"
	"loja-api/internal/service"

	"github.com/rs/zerolog"
)

// UsuarioHandler handles user-related HTTP requests.
type UsuarioHandler struct {
	service service.UsuarioService
	logger  zerolog.Logger
}

// NewUsuarioHandler creates a new user handler.
func NewUsuarioHandler(service service.UsuarioService, logger zerolog.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		service: service,
		logger:  logger.With().Str("handler", "usuario").Logger(),
	}
}

// List handles GET /api/usuarios requests.
func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeList(w, usuarios, len(usuarios))
}

// Get handles GET /api/usuarios/{id} requests.
func (h *UsuarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	usuario, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, usuario)
}

// Create handles POST /api/usuarios requests.
func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateUsuarioParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", h.logger)
		return
	}

	usuario, err := h.service.Create(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, "Usuário criado com sucesso", usuario)
}

// Update handles PUT /api/usuarios/{id} requests. Only the supplied fields
// are touched; there is no presence validation on this path.
func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	var params model.UpdateUsuarioParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", h.logger)
		return
	}

	usuario, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Usuário atualizado com sucesso", usuario)
}

// Delete handles DELETE /api/usuarios/{id} requests.
func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID inválido", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Usuário deletado com sucesso", nil)
}
