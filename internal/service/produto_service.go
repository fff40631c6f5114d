package service

import (
	"context"

	"loja-api/internal/model"
	"loja-api/internal/repository"

	"github.com/rs/zerolog"
)

// produtoService implements ProdutoService.
type produtoService struct {
	produtoRepo repository.ProdutoRepository
	logger      zerolog.Logger
}

// NewProdutoService creates a new product service.
func NewProdutoService(produtoRepo repository.ProdutoRepository, logger zerolog.Logger) ProdutoService {
	return &produtoService{
		produtoRepo: produtoRepo,
		logger:      logger.With().Str("service", "produto").Logger(),
	}
}

// GetAll retrieves all products.
func (s *produtoService) GetAll(ctx context.Context) ([]model.Produto, error) {
	produtos, err := s.produtoRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all produtos")
		return nil, err
	}

	s.logger.Debug().Int("count", len(produtos)).Msg("retrieved produtos")

	return produtos, nil
}

// GetByCategoria retrieves the products of one category.
func (s *produtoService) GetByCategoria(ctx context.Context, categoria string) ([]model.Produto, error) {
	produtos, err := s.produtoRepo.GetByCategoria(ctx, categoria)
	if err != nil {
		s.logger.Error().Err(err).Str("categoria", categoria).Msg("failed to get produtos by categoria")
		return nil, err
	}

	return produtos, nil
}

// GetByID retrieves a single product by id.
func (s *produtoService) GetByID(ctx context.Context, id int64) (*model.Produto, error) {
	produto, err := s.produtoRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("produto_id", id).Msg("failed to get produto by id")
		return nil, err
	}

	if produto == nil {
		s.logger.Debug().Int64("produto_id", id).Msg("produto not found")
		return nil, model.ErrProdutoNaoEncontrado
	}

	return produto, nil
}

// Create validates and inserts a new product. Nome is only checked for
// presence; preco must be present and non-zero, estoque present (zero is a
// valid stock level).
func (s *produtoService) Create(ctx context.Context, params model.CreateProdutoParams) (*model.Produto, error) {
	if params.Nome == "" || params.Preco == nil || *params.Preco == 0 || params.Estoque == nil {
		return nil, model.NewValidationError("Nome, preço e estoque são obrigatórios")
	}

	if !model.ProdutoValidations.Preco(*params.Preco) {
		return nil, model.NewValidationError("Preço deve ser maior que 0")
	}

	if !model.ProdutoValidations.Estoque(*params.Estoque) {
		return nil, model.NewValidationError("Estoque deve ser maior ou igual a 0")
	}

	produto, err := s.produtoRepo.Create(ctx, params)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create produto")
		return nil, err
	}

	s.logger.Info().Int64("produto_id", produto.ID).Msg("produto created")

	return produto, nil
}

// Update applies the supplied fields to a product.
func (s *produtoService) Update(ctx context.Context, id int64, params model.UpdateProdutoParams) (*model.Produto, error) {
	produto, err := s.produtoRepo.Update(ctx, id, params)
	if err != nil {
		s.logger.Error().Err(err).Int64("produto_id", id).Msg("failed to update produto")
		return nil, err
	}

	if produto == nil {
		return nil, model.ErrProdutoNaoEncontrado
	}

	return produto, nil
}

// Delete removes a product.
func (s *produtoService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.produtoRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("produto_id", id).Msg("failed to delete produto")
		return err
	}

	if !deleted {
		return model.ErrProdutoNaoEncontrado
	}

	return nil
}
