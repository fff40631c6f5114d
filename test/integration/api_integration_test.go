package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"loja-api/internal/handler"
	"loja-api/internal/repository"
	"loja-api/internal/router"
	"loja-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	usuarioRepo := repository.NewUsuarioRepository(testDB.Pool, logger)
	produtoRepo := repository.NewProdutoRepository(testDB.Pool, logger)
	pedidoRepo := repository.NewPedidoRepository(testDB.Pool, logger)

	usuarioService := service.NewUsuarioService(usuarioRepo, logger)
	produtoService := service.NewProdutoService(produtoRepo, logger)
	pedidoService := service.NewPedidoService(pedidoRepo, logger)

	usuarioHandler := handler.NewUsuarioHandler(usuarioService, logger)
	produtoHandler := handler.NewProdutoHandler(produtoService, logger)
	pedidoHandler := handler.NewPedidoHandler(pedidoService, logger)

	return router.New(usuarioHandler, produtoHandler, pedidoHandler, logger)
}

func doRequest(t *testing.T, server http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestUsuarioAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Full usuario lifecycle", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		// Create
		w, body := doRequest(t, server, http.MethodPost, "/api/usuarios",
			`{"nome":"Ana Silva","email":"ana@teste.com","senha":"segredo1"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Usuário criado com sucesso", body["message"])
		assert.NotContains(t, w.Body.String(), "senha")

		data := body["data"].(map[string]interface{})
		id := int64(data["id"].(float64))
		require.NotZero(t, id)

		createdAtualizadoEm, err := time.Parse(time.RFC3339, data["atualizado_em"].(string))
		require.NoError(t, err)

		// Read back
		w, body = doRequest(t, server, http.MethodGet,
			"/api/usuarios/"+jsonID(id), "")
		assert.Equal(t, http.StatusOK, w.Code)
		data = body["data"].(map[string]interface{})
		assert.Equal(t, "Ana Silva", data["nome"])
		assert.Equal(t, "ana@teste.com", data["email"])

		// Partial update keeps the untouched fields
		w, body = doRequest(t, server, http.MethodPut,
			"/api/usuarios/"+jsonID(id), `{"telefone":"11999990000"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Usuário atualizado com sucesso", body["message"])
		data = body["data"].(map[string]interface{})
		assert.Equal(t, "Ana Silva", data["nome"])
		assert.Equal(t, "ana@teste.com", data["email"])
		assert.Equal(t, "11999990000", data["telefone"])

		updatedAtualizadoEm, err := time.Parse(time.RFC3339, data["atualizado_em"].(string))
		require.NoError(t, err)
		assert.False(t, updatedAtualizadoEm.Before(createdAtualizadoEm))

		// Delete
		w, body = doRequest(t, server, http.MethodDelete,
			"/api/usuarios/"+jsonID(id), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Usuário deletado com sucesso", body["message"])

		// Gone
		w, body = doRequest(t, server, http.MethodGet,
			"/api/usuarios/"+jsonID(id), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Usuário não encontrado", body["error"])
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		payload := `{"nome":"Ana Silva","email":"ana@teste.com","senha":"segredo1"}`

		w, _ := doRequest(t, server, http.MethodPost, "/api/usuarios", payload)
		assert.Equal(t, http.StatusCreated, w.Code)

		w, body := doRequest(t, server, http.MethodPost, "/api/usuarios", payload)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Email já cadastrado", body["error"])
	})

	t.Run("Validation failures return 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w, body := doRequest(t, server, http.MethodPost, "/api/usuarios",
			`{"nome":"Ana Silva","senha":"segredo1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Nome, email e senha são obrigatórios", body["error"])

		w, body = doRequest(t, server, http.MethodPost, "/api/usuarios",
			`{"nome":"Ana Silva","email":"ana@teste.com","senha":"123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Senha deve ter no mínimo 6 caracteres", body["error"])
	})
}

func TestProdutoAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("List and filter by categoria", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProdutos(t, testDB.Pool)

		w, body := doRequest(t, server, http.MethodGet, "/api/produtos", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(5), body["count"])

		w, body = doRequest(t, server, http.MethodGet, "/api/produtos?categoria=papelaria", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(3), body["count"])
	})

	t.Run("Create with zero estoque", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w, body := doRequest(t, server, http.MethodPost, "/api/produtos",
			`{"nome":"Caderno","preco":15.9,"estoque":0}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["estoque"])
	})

	t.Run("Create without preco returns 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w, body := doRequest(t, server, http.MethodPost, "/api/produtos",
			`{"nome":"Caderno","estoque":5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Nome, preço e estoque são obrigatórios", body["error"])
	})
}

func TestPedidoAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("Create computes total from itens", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		usuarioID := SeedUsuario(t, testDB.Pool, "Ana Silva", "ana@teste.com")

		payload := `{"usuarioId":` + jsonID(usuarioID) +
			`,"produtos":[{"produtoId":1,"quantidade":2,"preco":10.5},{"produtoId":2,"quantidade":1,"preco":4}]}`
		w, body := doRequest(t, server, http.MethodPost, "/api/pedidos", payload)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Pedido criado com sucesso", body["message"])

		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(25), data["total"])
		assert.Equal(t, "pendente", data["status"])
		assert.Len(t, data["itens"], 2)
	})

	t.Run("Filter by usuarioId", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		anaID := SeedUsuario(t, testDB.Pool, "Ana Silva", "ana@teste.com")
		brunoID := SeedUsuario(t, testDB.Pool, "Bruno Costa", "bruno@teste.com")

		payload := `{"usuarioId":` + jsonID(anaID) +
			`,"produtos":[{"produtoId":1,"quantidade":1,"preco":10}]}`
		w, _ := doRequest(t, server, http.MethodPost, "/api/pedidos", payload)
		require.Equal(t, http.StatusCreated, w.Code)

		payload = `{"usuarioId":` + jsonID(brunoID) +
			`,"produtos":[{"produtoId":1,"quantidade":1,"preco":10}]}`
		w, _ = doRequest(t, server, http.MethodPost, "/api/pedidos", payload)
		require.Equal(t, http.StatusCreated, w.Code)

		w, body := doRequest(t, server, http.MethodGet,
			"/api/pedidos?usuarioId="+jsonID(anaID), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("Update status keeps total", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		usuarioID := SeedUsuario(t, testDB.Pool, "Ana Silva", "ana@teste.com")

		payload := `{"usuarioId":` + jsonID(usuarioID) +
			`,"produtos":[{"produtoId":1,"quantidade":1,"preco":10}]}`
		w, body := doRequest(t, server, http.MethodPost, "/api/pedidos", payload)
		require.Equal(t, http.StatusCreated, w.Code)
		data := body["data"].(map[string]interface{})
		id := int64(data["id"].(float64))

		w, body = doRequest(t, server, http.MethodPut,
			"/api/pedidos/"+jsonID(id), `{"status":"enviado"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		data = body["data"].(map[string]interface{})
		assert.Equal(t, "enviado", data["status"])
		assert.Equal(t, float64(10), data["total"])
	})

	t.Run("Invalid item returns 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		usuarioID := SeedUsuario(t, testDB.Pool, "Ana Silva", "ana@teste.com")

		payload := `{"usuarioId":` + jsonID(usuarioID) +
			`,"produtos":[{"produtoId":1,"quantidade":0,"preco":10}]}`
		w, body := doRequest(t, server, http.MethodPost, "/api/pedidos", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Cada produto deve ter produtoId, quantidade e preco", body["error"])
	})
}

func TestHealthEndpoint_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}
