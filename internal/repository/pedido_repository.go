package repository

import (
	"context"
	"errors"
	"fmt"

	"loja-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pedidoRepository implements PedidoRepository using PostgreSQL.
type pedidoRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPedidoRepository creates a new PostgreSQL-backed order repository.
func NewPedidoRepository(pool *pgxpool.Pool, logger zerolog.Logger) PedidoRepository {
	return &pedidoRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "pedido").Logger(),
	}
}

const pedidoColumns = "id, usuario_id, status, total, criado_em, atualizado_em"

func scanPedido(row pgx.Row) (*model.Pedido, error) {
	var p model.Pedido
	err := row.Scan(&p.ID, &p.UsuarioID, &p.Status, &p.Total, &p.CriadoEm, &p.AtualizadoEm)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepository) queryPedidos(ctx context.Context, operation, query string, args ...interface{}) ([]model.Pedido, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query pedidos")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	pedidos := make([]model.Pedido, 0)
	for rows.Next() {
		var p model.Pedido
		err := rows.Scan(&p.ID, &p.UsuarioID, &p.Status, &p.Total, &p.CriadoEm, &p.AtualizadoEm)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan pedido row")
			return nil, fmt.Errorf("%s: %w", operation, err)
		}
		pedidos = append(pedidos, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating pedido rows")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return pedidos, nil
}

// GetAll retrieves every order, most recent id first.
func (r *pedidoRepository) GetAll(ctx context.Context) ([]model.Pedido, error) {
	query := `
		SELECT ` + pedidoColumns + `
		FROM pedidos
		ORDER BY id DESC
	`
	return r.queryPedidos(ctx, "Erro ao buscar pedidos", query)
}

// GetByUsuarioID retrieves the orders of one user, most recent id first.
func (r *pedidoRepository) GetByUsuarioID(ctx context.Context, usuarioID int64) ([]model.Pedido, error) {
	query := `
		SELECT ` + pedidoColumns + `
		FROM pedidos
		WHERE usuario_id = $1
		ORDER BY id DESC
	`
	return r.queryPedidos(ctx, "Erro ao buscar pedidos do usuário", query, usuarioID)
}

// GetByID retrieves a single order with its line items.
func (r *pedidoRepository) GetByID(ctx context.Context, id int64) (*model.Pedido, error) {
	query := `
		SELECT ` + pedidoColumns + `
		FROM pedidos
		WHERE id = $1
	`

	p, err := scanPedido(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("pedido_id", id).Msg("pedido not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("pedido_id", id).Msg("failed to query pedido")
		return nil, fmt.Errorf("Erro ao buscar pedido: %w", err)
	}

	itens, err := r.getItens(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Erro ao buscar pedido: %w", err)
	}
	p.Itens = itens

	return p, nil
}

// getItens loads the line items of an order ordered by id.
func (r *pedidoRepository) getItens(ctx context.Context, pedidoID int64) ([]model.PedidoItem, error) {
	query := `
		SELECT id, pedido_id, produto_id, quantidade, preco
		FROM pedido_itens
		WHERE pedido_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, pedidoID)
	if err != nil {
		r.logger.Error().Err(err).Int64("pedido_id", pedidoID).Msg("failed to query pedido itens")
		return nil, err
	}
	defer rows.Close()

	itens := make([]model.PedidoItem, 0)
	for rows.Next() {
		var item model.PedidoItem
		err := rows.Scan(&item.ID, &item.PedidoID, &item.ProdutoID, &item.Quantidade, &item.Preco)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan pedido item row")
			return nil, err
		}
		itens = append(itens, item)
	}

	return itens, rows.Err()
}

// Create inserts the order and its line items in a single transaction. The
// pedido row is inserted first; the itens follow as one batch keyed by the
// generated pedido id.
func (r *pedidoRepository) Create(ctx context.Context, params model.CreatePedidoParams, total float64) (*model.Pedido, error) {
	status := params.Status
	if status == "" {
		status = model.PedidoStatusPendente
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("Erro ao criar pedido: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertPedido := `
		INSERT INTO pedidos (usuario_id, status, total)
		VALUES ($1, $2, $3)
		RETURNING ` + pedidoColumns

	p, err := scanPedido(tx.QueryRow(ctx, insertPedido, params.UsuarioID, status, total))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create pedido")
		return nil, fmt.Errorf("Erro ao criar pedido: %w", err)
	}

	insertItem := `
		INSERT INTO pedido_itens (pedido_id, produto_id, quantidade, preco)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	batch := &pgx.Batch{}
	for _, item := range params.Produtos {
		batch.Queue(insertItem, p.ID, item.ProdutoID, item.Quantidade, item.Preco)
	}

	results := tx.SendBatch(ctx, batch)

	itens := make([]model.PedidoItem, 0, len(params.Produtos))
	for _, item := range params.Produtos {
		var itemID int64
		if err := results.QueryRow().Scan(&itemID); err != nil {
			_ = results.Close()
			r.logger.Error().
				Err(err).
				Int64("pedido_id", p.ID).
				Int64("produto_id", item.ProdutoID).
				Msg("failed to create pedido item")
			return nil, fmt.Errorf("Erro ao criar pedido: %w", err)
		}
		itens = append(itens, model.PedidoItem{
			ID:         itemID,
			PedidoID:   p.ID,
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Preco:      item.Preco,
		})
	}

	if err := results.Close(); err != nil {
		r.logger.Error().Err(err).Int64("pedido_id", p.ID).Msg("failed to close item batch")
		return nil, fmt.Errorf("Erro ao criar pedido: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("pedido_id", p.ID).Msg("failed to commit pedido")
		return nil, fmt.Errorf("Erro ao criar pedido: %w", err)
	}

	p.Itens = itens

	r.logger.Debug().
		Int64("pedido_id", p.ID).
		Int("itens", len(itens)).
		Msg("pedido created successfully")

	return p, nil
}

// Update applies status/total to an existing order in one statement,
// keeping stored values for absent fields.
func (r *pedidoRepository) Update(ctx context.Context, id int64, params model.UpdatePedidoParams) (*model.Pedido, error) {
	query := `
		UPDATE pedidos
		SET status = COALESCE($1, status),
		    total = COALESCE($2, total),
		    atualizado_em = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING ` + pedidoColumns

	p, err := scanPedido(r.pool.QueryRow(ctx, query, params.Status, params.Total, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("pedido_id", id).Msg("failed to update pedido")
		return nil, fmt.Errorf("Erro ao atualizar pedido: %w", err)
	}

	return p, nil
}

// Delete removes an order, reporting whether a row existed. Line items go
// with it via the pedido_itens cascade.
func (r *pedidoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM pedidos WHERE id = $1 RETURNING id`

	var deletedID int64
	err := r.pool.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		r.logger.Error().Err(err).Int64("pedido_id", id).Msg("failed to delete pedido")
		return false, fmt.Errorf("Erro ao deletar pedido: %w", err)
	}

	r.logger.Debug().Int64("pedido_id", id).Msg("pedido deleted successfully")

	return true, nil
}
