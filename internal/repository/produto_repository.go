package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loja-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// produtoRepository implements ProdutoRepository using PostgreSQL.
type produtoRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProdutoRepository creates a new PostgreSQL-backed product repository.
func NewProdutoRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProdutoRepository {
	return &produtoRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "produto").Logger(),
	}
}

const produtoColumns = "id, nome, descricao, preco, estoque, categoria, criado_em, atualizado_em"

func scanProduto(row pgx.Row) (*model.Produto, error) {
	var p model.Produto
	err := row.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.Estoque, &p.Categoria, &p.CriadoEm, &p.AtualizadoEm)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepository) queryProdutos(ctx context.Context, operation, query string, args ...interface{}) ([]model.Produto, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query produtos")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	produtos := make([]model.Produto, 0)
	for rows.Next() {
		var p model.Produto
		err := rows.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.Estoque, &p.Categoria, &p.CriadoEm, &p.AtualizadoEm)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan produto row")
			return nil, fmt.Errorf("%s: %w", operation, err)
		}
		produtos = append(produtos, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating produto rows")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return produtos, nil
}

// GetAll retrieves every product ordered by id.
func (r *produtoRepository) GetAll(ctx context.Context) ([]model.Produto, error) {
	query := `
		SELECT ` + produtoColumns + `
		FROM produtos
		ORDER BY id
	`
	return r.queryProdutos(ctx, "Erro ao buscar produtos", query)
}

// GetByCategoria retrieves the products of a category ordered by nome.
func (r *produtoRepository) GetByCategoria(ctx context.Context, categoria string) ([]model.Produto, error) {
	query := `
		SELECT ` + produtoColumns + `
		FROM produtos
		WHERE categoria = $1
		ORDER BY nome
	`
	return r.queryProdutos(ctx, "Erro ao buscar produtos por categoria", query, categoria)
}

// GetByID retrieves a single product by primary key.
func (r *produtoRepository) GetByID(ctx context.Context, id int64) (*model.Produto, error) {
	query := `
		SELECT ` + produtoColumns + `
		FROM produtos
		WHERE id = $1
	`

	p, err := scanProduto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("produto_id", id).Msg("produto not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("produto_id", id).Msg("failed to query produto")
		return nil, fmt.Errorf("Erro ao buscar produto: %w", err)
	}

	return p, nil
}

// Create inserts a new product. Absent optional fields take their defaults:
// descricao/categoria null, estoque 0.
func (r *produtoRepository) Create(ctx context.Context, params model.CreateProdutoParams) (*model.Produto, error) {
	estoque := 0
	if params.Estoque != nil {
		estoque = *params.Estoque
	}

	var preco float64
	if params.Preco != nil {
		preco = *params.Preco
	}

	query := `
		INSERT INTO produtos (nome, descricao, preco, estoque, categoria)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + produtoColumns

	p, err := scanProduto(r.pool.QueryRow(ctx, query,
		params.Nome, params.Descricao, preco, estoque, params.Categoria,
	))
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create produto")
		return nil, fmt.Errorf("Erro ao criar produto: %w", err)
	}

	r.logger.Debug().Int64("produto_id", p.ID).Msg("produto created successfully")

	return p, nil
}

// Update applies the supplied fields to an existing product. The record is
// re-read first; an absent id returns (nil, nil) without mutating anything.
func (r *produtoRepository) Update(ctx context.Context, id int64, params model.UpdateProdutoParams) (*model.Produto, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	sets := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)
	param := 1

	if params.Nome != nil {
		sets = append(sets, fmt.Sprintf("nome = $%d", param))
		args = append(args, *params.Nome)
		param++
	}
	if params.Descricao != nil {
		sets = append(sets, fmt.Sprintf("descricao = $%d", param))
		args = append(args, *params.Descricao)
		param++
	}
	if params.Preco != nil {
		sets = append(sets, fmt.Sprintf("preco = $%d", param))
		args = append(args, *params.Preco)
		param++
	}
	if params.Estoque != nil {
		sets = append(sets, fmt.Sprintf("estoque = $%d", param))
		args = append(args, *params.Estoque)
		param++
	}
	if params.Categoria != nil {
		sets = append(sets, fmt.Sprintf("categoria = $%d", param))
		args = append(args, *params.Categoria)
		param++
	}

	sets = append(sets, "atualizado_em = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE produtos
		SET %s
		WHERE id = $%d
		RETURNING `+produtoColumns,
		strings.Join(sets, ", "), param)

	p, err := scanProduto(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Deleted between the existence check and the update.
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("produto_id", id).Msg("failed to update produto")
		return nil, fmt.Errorf("Erro ao atualizar produto: %w", err)
	}

	return p, nil
}

// Delete removes a product, reporting whether a row existed.
func (r *produtoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM produtos WHERE id = $1 RETURNING id`

	var deletedID int64
	err := r.pool.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		r.logger.Error().Err(err).Int64("produto_id", id).Msg("failed to delete produto")
		return false, fmt.Errorf("Erro ao deletar produto: %w", err)
	}

	r.logger.Debug().Int64("produto_id", id).Msg("produto deleted successfully")

	return true, nil
}
