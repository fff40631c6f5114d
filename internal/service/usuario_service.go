package service

import (
	"context"
	"fmt"

	"loja-api/internal/model"
	"loja-api/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// usuarioService implements UsuarioService.
type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
	logger      zerolog.Logger
}

// NewUsuarioService creates a new user service.
func NewUsuarioService(usuarioRepo repository.UsuarioRepository, logger zerolog.Logger) UsuarioService {
	return &usuarioService{
		usuarioRepo: usuarioRepo,
		logger:      logger.With().Str("service", "usuario").Logger(),
	}
}

// GetAll retrieves all users.
func (s *usuarioService) GetAll(ctx context.Context) ([]model.Usuario, error) {
	usuarios, err := s.usuarioRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all usuarios")
		return nil, err
	}

	s.logger.Debug().Int("count", len(usuarios)).Msg("retrieved usuarios")

	return usuarios, nil
}

// GetByID retrieves a single user by id.
func (s *usuarioService) GetByID(ctx context.Context, id int64) (*model.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("usuario_id", id).Msg("failed to get usuario by id")
		return nil, err
	}

	if usuario == nil {
		s.logger.Debug().Int64("usuario_id", id).Msg("usuario not found")
		return nil, model.ErrUsuarioNaoEncontrado
	}

	return usuario, nil
}

// GetByEmail retrieves a user by email, including the senha hash.
func (s *usuarioService) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get usuario by email")
		return nil, err
	}

	if usuario == nil {
		return nil, model.ErrUsuarioNaoEncontrado
	}

	return usuario, nil
}

// Create validates and inserts a new user. Validation failures are returned
// before any storage access; the senha is stored as a bcrypt hash.
func (s *usuarioService) Create(ctx context.Context, params model.CreateUsuarioParams) (*model.Usuario, error) {
	if params.Nome == "" || params.Email == "" || params.Senha == "" {
		return nil, model.NewValidationError("Nome, email e senha são obrigatórios")
	}

	if !model.UsuarioValidations.Email(params.Email) {
		return nil, model.NewValidationError("Email inválido")
	}

	if !model.UsuarioValidations.Senha(params.Senha) {
		return nil, model.NewValidationError("Senha deve ter no mínimo 6 caracteres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Senha), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash senha")
		return nil, fmt.Errorf("Erro ao criar usuário: %w", err)
	}
	params.Senha = string(hash)

	usuario, err := s.usuarioRepo.Create(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create usuario")
		return nil, err
	}

	s.logger.Info().Int64("usuario_id", usuario.ID).Msg("usuario created")

	return usuario, nil
}

// Update applies the supplied fields to a user. A supplied senha is hashed
// before storage.
func (s *usuarioService) Update(ctx context.Context, id int64, params model.UpdateUsuarioParams) (*model.Usuario, error) {
	if params.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Senha), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to hash senha")
			return nil, fmt.Errorf("Erro ao atualizar usuário: %w", err)
		}
		hashed := string(hash)
		params.Senha = &hashed
	}

	usuario, err := s.usuarioRepo.Update(ctx, id, params)
	if err != nil {
		s.logger.Error().Err(err).Int64("usuario_id", id).Msg("failed to update usuario")
		return nil, err
	}

	if usuario == nil {
		return nil, model.ErrUsuarioNaoEncontrado
	}

	return usuario, nil
}

// Delete removes a user.
func (s *usuarioService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.usuarioRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("usuario_id", id).Msg("failed to delete usuario")
		return err
	}

	if !deleted {
		return model.ErrUsuarioNaoEncontrado
	}

	return nil
}
