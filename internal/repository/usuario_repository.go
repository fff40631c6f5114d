package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loja-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolationCode is the PostgreSQL error code for unique-constraint
// violations, raised when usuarios.email collides.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// usuarioRepository implements UsuarioRepository using PostgreSQL.
type usuarioRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUsuarioRepository creates a new PostgreSQL-backed user repository.
func NewUsuarioRepository(pool *pgxpool.Pool, logger zerolog.Logger) UsuarioRepository {
	return &usuarioRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "usuario").Logger(),
	}
}

// usuarioColumns are the columns read operations return. Senha is excluded
// from every response-bound query.
const usuarioColumns = "id, nome, email, telefone, criado_em, atualizado_em"

func scanUsuario(row pgx.Row) (*model.Usuario, error) {
	var u model.Usuario
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.Telefone, &u.CriadoEm, &u.AtualizadoEm)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAll retrieves every user ordered by id.
func (r *usuarioRepository) GetAll(ctx context.Context) ([]model.Usuario, error) {
	query := `
		SELECT ` + usuarioColumns + `
		FROM usuarios
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query usuarios")
		return nil, fmt.Errorf("Erro ao buscar usuários: %w", err)
	}
	defer rows.Close()

	usuarios := make([]model.Usuario, 0)
	for rows.Next() {
		var u model.Usuario
		err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Telefone, &u.CriadoEm, &u.AtualizadoEm)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan usuario row")
			return nil, fmt.Errorf("Erro ao buscar usuários: %w", err)
		}
		usuarios = append(usuarios, u)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating usuario rows")
		return nil, fmt.Errorf("Erro ao buscar usuários: %w", err)
	}

	return usuarios, nil
}

// GetByID retrieves a single user by primary key.
func (r *usuarioRepository) GetByID(ctx context.Context, id int64) (*model.Usuario, error) {
	query := `
		SELECT ` + usuarioColumns + `
		FROM usuarios
		WHERE id = $1
	`

	u, err := scanUsuario(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("usuario_id", id).Msg("usuario not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("usuario_id", id).Msg("failed to query usuario")
		return nil, fmt.Errorf("Erro ao buscar usuário: %w", err)
	}

	return u, nil
}

// GetByEmail retrieves a user by email. Unlike the other lookups it also
// returns the stored senha hash.
func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	query := `
		SELECT id, nome, email, senha, telefone, criado_em, atualizado_em
		FROM usuarios
		WHERE email = $1
	`

	var u model.Usuario
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Nome, &u.Email, &u.Senha, &u.Telefone, &u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query usuario by email")
		return nil, fmt.Errorf("Erro ao buscar usuário por email: %w", err)
	}

	return &u, nil
}

// Create inserts a new user and returns the created record without senha.
func (r *usuarioRepository) Create(ctx context.Context, params model.CreateUsuarioParams) (*model.Usuario, error) {
	query := `
		INSERT INTO usuarios (nome, email, senha, telefone)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + usuarioColumns

	u, err := scanUsuario(r.pool.QueryRow(ctx, query,
		params.Nome, params.Email, params.Senha, params.Telefone,
	))
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("email", params.Email).Msg("duplicate email on create")
			return nil, model.ErrEmailJaCadastrado
		}
		r.logger.Error().Err(err).Msg("failed to create usuario")
		return nil, fmt.Errorf("Erro ao criar usuário: %w", err)
	}

	r.logger.Debug().Int64("usuario_id", u.ID).Msg("usuario created successfully")

	return u, nil
}

// Update applies the supplied fields to an existing user. The record is
// re-read first; an absent id returns (nil, nil) without mutating anything.
func (r *usuarioRepository) Update(ctx context.Context, id int64, params model.UpdateUsuarioParams) (*model.Usuario, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)
	param := 1

	if params.Nome != nil {
		sets = append(sets, fmt.Sprintf("nome = $%d", param))
		args = append(args, *params.Nome)
		param++
	}
	if params.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", param))
		args = append(args, *params.Email)
		param++
	}
	if params.Telefone != nil {
		sets = append(sets, fmt.Sprintf("telefone = $%d", param))
		args = append(args, *params.Telefone)
		param++
	}
	if params.Senha != nil {
		sets = append(sets, fmt.Sprintf("senha = $%d", param))
		args = append(args, *params.Senha)
		param++
	}

	sets = append(sets, "atualizado_em = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE usuarios
		SET %s
		WHERE id = $%d
		RETURNING `+usuarioColumns,
		strings.Join(sets, ", "), param)

	u, err := scanUsuario(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Deleted between the existence check and the update.
			return nil, nil
		}
		if isUniqueViolation(err) {
			r.logger.Warn().Int64("usuario_id", id).Msg("duplicate email on update")
			return nil, model.ErrEmailJaCadastrado
		}
		r.logger.Error().Err(err).Int64("usuario_id", id).Msg("failed to update usuario")
		return nil, fmt.Errorf("Erro ao atualizar usuário: %w", err)
	}

	return u, nil
}

// Delete removes a user, reporting whether a row existed.
func (r *usuarioRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM usuarios WHERE id = $1 RETURNING id`

	var deletedID int64
	err := r.pool.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		r.logger.Error().Err(err).Int64("usuario_id", id).Msg("failed to delete usuario")
		return false, fmt.Errorf("Erro ao deletar usuário: %w", err)
	}

	r.logger.Debug().Int64("usuario_id", id).Msg("usuario deleted successfully")

	return true, nil
}
