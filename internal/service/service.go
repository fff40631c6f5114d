package service

import (
	"context"

	"loja-api/internal/model"
)

// UsuarioService defines operations for user management.
//
// Mutations validate input before touching storage and return
// *model.DomainError for every client-attributable failure.
type UsuarioService interface {
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]model.Usuario, error)

	// GetByID retrieves a single user by id.
	GetByID(ctx context.Context, id int64) (*model.Usuario, error)

	// GetByEmail retrieves a user by email, including the senha hash.
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)

	// Create validates and inserts a new user. The senha is stored as a
	// bcrypt hash.
	Create(ctx context.Context, params model.CreateUsuarioParams) (*model.Usuario, error)

	// Update applies the supplied fields to a user.
	Update(ctx context.Context, id int64, params model.UpdateUsuarioParams) (*model.Usuario, error)

	// Delete removes a user.
	Delete(ctx context.Context, id int64) error
}

// ProdutoService defines operations for product management.
type ProdutoService interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Produto, error)

	// GetByCategoria retrieves the products of one category.
	GetByCategoria(ctx context.Context, categoria string) ([]model.Produto, error)

	// GetByID retrieves a single product by id.
	GetByID(ctx context.Context, id int64) (*model.Produto, error)

	// Create validates and inserts a new product.
	Create(ctx context.Context, params model.CreateProdutoParams) (*model.Produto, error)

	// Update applies the supplied fields to a product.
	Update(ctx context.Context, id int64, params model.UpdateProdutoParams) (*model.Produto, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}

// PedidoService defines operations for order management.
type PedidoService interface {
	// GetAll retrieves all orders, most recent first.
	GetAll(ctx context.Context) ([]model.Pedido, error)

	// GetByUsuarioID retrieves the orders of one user, most recent first.
	GetByUsuarioID(ctx context.Context, usuarioID int64) ([]model.Pedido, error)

	// GetByID retrieves a single order with its line items.
	GetByID(ctx context.Context, id int64) (*model.Pedido, error)

	// Create validates and inserts a new order with its line items.
	Create(ctx context.Context, params model.CreatePedidoParams) (*model.Pedido, error)

	// Update applies status/total to an order.
	Update(ctx context.Context, id int64, params model.UpdatePedidoParams) (*model.Pedido, error)

	// Delete removes an order.
	Delete(ctx context.Context, id int64) error
}
