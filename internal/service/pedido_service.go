package service

import (
	"context"

	"loja-api/internal/model"
	"loja-api/internal/repository"

	"github.com/rs/zerolog"
)

// pedidoService implements PedidoService.
type pedidoService struct {
	pedidoRepo repository.PedidoRepository
	logger     zerolog.Logger
}

// NewPedidoService creates a new order service.
func NewPedidoService(pedidoRepo repository.PedidoRepository, logger zerolog.Logger) PedidoService {
	return &pedidoService{
		pedidoRepo: pedidoRepo,
		logger:     logger.With().Str("service", "pedido").Logger(),
	}
}

// GetAll retrieves all orders, most recent first.
func (s *pedidoService) GetAll(ctx context.Context) ([]model.Pedido, error) {
	pedidos, err := s.pedidoRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all pedidos")
		return nil, err
	}

	s.logger.Debug().Int("count", len(pedidos)).Msg("retrieved pedidos")

	return pedidos, nil
}

// GetByUsuarioID retrieves the orders of one user, most recent first.
func (s *pedidoService) GetByUsuarioID(ctx context.Context, usuarioID int64) ([]model.Pedido, error) {
	pedidos, err := s.pedidoRepo.GetByUsuarioID(ctx, usuarioID)
	if err != nil {
		s.logger.Error().Err(err).Int64("usuario_id", usuarioID).Msg("failed to get pedidos by usuario")
		return nil, err
	}

	return pedidos, nil
}

// GetByID retrieves a single order with its line items.
func (s *pedidoService) GetByID(ctx context.Context, id int64) (*model.Pedido, error) {
	pedido, err := s.pedidoRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("pedido_id", id).Msg("failed to get pedido by id")
		return nil, err
	}

	if pedido == nil {
		s.logger.Debug().Int64("pedido_id", id).Msg("pedido not found")
		return nil, model.ErrPedidoNaoEncontrado
	}

	return pedido, nil
}

// Create validates and inserts a new order. Every produtos entry must carry
// produtoId, quantidade and preco; when total is absent it is computed from
// the line items.
func (s *pedidoService) Create(ctx context.Context, params model.CreatePedidoParams) (*model.Pedido, error) {
	if params.UsuarioID == 0 || len(params.Produtos) == 0 {
		return nil, model.NewValidationError("UsuarioId e produtos (array) são obrigatórios")
	}

	for _, item := range params.Produtos {
		if item.ProdutoID == 0 || item.Quantidade == 0 || item.Preco == 0 {
			return nil, model.NewValidationError("Cada produto deve ter produtoId, quantidade e preco")
		}
	}

	var total float64
	if params.Total != nil {
		total = *params.Total
	} else {
		for _, item := range params.Produtos {
			total += float64(item.Quantidade) * item.Preco
		}
	}

	pedido, err := s.pedidoRepo.Create(ctx, params, total)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create pedido")
		return nil, err
	}

	s.logger.Info().
		Int64("pedido_id", pedido.ID).
		Int64("usuario_id", pedido.UsuarioID).
		Int("itens", len(pedido.Itens)).
		Msg("pedido created")

	return pedido, nil
}

// Update applies status/total to an order.
func (s *pedidoService) Update(ctx context.Context, id int64, params model.UpdatePedidoParams) (*model.Pedido, error) {
	pedido, err := s.pedidoRepo.Update(ctx, id, params)
	if err != nil {
		s.logger.Error().Err(err).Int64("pedido_id", id).Msg("failed to update pedido")
		return nil, err
	}

	if pedido == nil {
		return nil, model.ErrPedidoNaoEncontrado
	}

	return pedido, nil
}

// Delete removes an order.
func (s *pedidoService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.pedidoRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("pedido_id", id).Msg("failed to delete pedido")
		return err
	}

	if !deleted {
		return model.ErrPedidoNaoEncontrado
	}

	return nil
}
