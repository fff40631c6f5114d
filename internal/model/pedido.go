package model

import "time"

// Default values applied when a pedido is created without them.
const (
	PedidoStatusPendente = "pendente"
)

// Pedido represents a customer order. Itens is only populated by operations
// that load line items (create and get-by-id); list queries leave it empty.
type Pedido struct {
	ID           int64        `json:"id" db:"id"`
	UsuarioID    int64        `json:"usuario_id" db:"usuario_id"`
	Status       string       `json:"status" db:"status"`
	Total        float64      `json:"total" db:"total"`
	Itens        []PedidoItem `json:"itens,omitempty"`
	CriadoEm     time.Time    `json:"criado_em" db:"criado_em"`
	AtualizadoEm time.Time    `json:"atualizado_em" db:"atualizado_em"`
}

// PedidoItem represents a line item of an order.
type PedidoItem struct {
	ID         int64   `json:"-" db:"id"`
	PedidoID   int64   `json:"-" db:"pedido_id"`
	ProdutoID  int64   `json:"produtoId" db:"produto_id"`
	Quantidade int     `json:"quantidade" db:"quantidade"`
	Preco      float64 `json:"preco" db:"preco"`
}

// CreatePedidoParams holds the request payload for creating an order.
type CreatePedidoParams struct {
	UsuarioID int64                    `json:"usuarioId"`
	Status    string                   `json:"status"`
	Total     *float64                 `json:"total"`
	Produtos  []CreatePedidoItemParams `json:"produtos"`
}

// CreatePedidoItemParams is a single entry of the produtos array.
type CreatePedidoItemParams struct {
	ProdutoID  int64   `json:"produtoId"`
	Quantidade int     `json:"quantidade"`
	Preco      float64 `json:"preco"`
}

// UpdatePedidoParams holds the updatable fields of an order. A nil field
// keeps the stored value.
type UpdatePedidoParams struct {
	Status *string  `json:"status"`
	Total  *float64 `json:"total"`
}
