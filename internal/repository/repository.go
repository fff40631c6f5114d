package repository

import (
	"context"

	"loja-api/internal/model"
)

// UsuarioRepository defines the interface for user data access operations.
//
// Lookup methods return (nil, nil) when no row matches; errors are reserved
// for storage failures.
type UsuarioRepository interface {
	// GetAll retrieves every user ordered by id. The senha column is never
	// selected.
	GetAll(ctx context.Context) ([]model.Usuario, error)

	// GetByID retrieves a single user by primary key.
	GetByID(ctx context.Context, id int64) (*model.Usuario, error)

	// GetByEmail retrieves a user by email, including the senha hash.
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)

	// Create inserts a new user and returns the created record without the
	// senha field. A duplicate email yields model.ErrEmailJaCadastrado.
	Create(ctx context.Context, params model.CreateUsuarioParams) (*model.Usuario, error)

	// Update applies the supplied fields to an existing user and refreshes
	// atualizado_em. Returns (nil, nil) when the user does not exist.
	Update(ctx context.Context, id int64, params model.UpdateUsuarioParams) (*model.Usuario, error)

	// Delete removes a user. Returns false when no row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProdutoRepository defines the interface for product data access operations.
type ProdutoRepository interface {
	// GetAll retrieves every product ordered by id.
	GetAll(ctx context.Context) ([]model.Produto, error)

	// GetByID retrieves a single product by primary key.
	GetByID(ctx context.Context, id int64) (*model.Produto, error)

	// GetByCategoria retrieves the products of a category ordered by nome.
	GetByCategoria(ctx context.Context, categoria string) ([]model.Produto, error)

	// Create inserts a new product, applying defaults for absent optional
	// fields (estoque 0, descricao/categoria null).
	Create(ctx context.Context, params model.CreateProdutoParams) (*model.Produto, error)

	// Update applies the supplied fields to an existing product and
	// refreshes atualizado_em. Returns (nil, nil) when absent.
	Update(ctx context.Context, id int64, params model.UpdateProdutoParams) (*model.Produto, error)

	// Delete removes a product. Returns false when no row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// PedidoRepository defines the interface for order data access operations.
type PedidoRepository interface {
	// GetAll retrieves every order, most recent id first, without itens.
	GetAll(ctx context.Context) ([]model.Pedido, error)

	// GetByID retrieves a single order with its line items.
	GetByID(ctx context.Context, id int64) (*model.Pedido, error)

	// GetByUsuarioID retrieves the orders of one user, most recent id first.
	GetByUsuarioID(ctx context.Context, usuarioID int64) ([]model.Pedido, error)

	// Create inserts the order and its line items in a single transaction
	// and returns the created record with itens populated.
	Create(ctx context.Context, params model.CreatePedidoParams, total float64) (*model.Pedido, error)

	// Update applies status/total to an existing order, keeping stored
	// values for absent fields. Returns (nil, nil) when absent.
	Update(ctx context.Context, id int64, params model.UpdatePedidoParams) (*model.Pedido, error)

	// Delete removes an order; line items cascade. Returns false when no
	// row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
