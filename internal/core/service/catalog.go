package service

import (
	"context"
	"errors"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/dto"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
	"github.com/rafaelleal24/smartretail/internal/core/port"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
)

// CatalogService serves the product list. Adjusted prices are computed on every read.
type CatalogService struct {
	productRepository port.ProductPort
}

func NewCatalogService(productRepository port.ProductPort) *CatalogService {
	return &CatalogService{productRepository: productRepository}
}

func (s *CatalogService) List(ctx context.Context) ([]dto.ProductView, error) {
	products, err := s.productRepository.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "catalog: list products failed", err, nil)
		return nil, err
	}
	return dto.NewProductViews(products), nil
}

func (s *CatalogService) Get(ctx context.Context, id domain.ID) (*dto.ProductView, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, serviceerrors.Wrap(serviceerrors.KindNotFound, "product not found", err)
		}
		logger.Error(ctx, "catalog: get product failed", err, map[string]any{
			"product_id": id,
		})
		return nil, err
	}

	view := dto.NewProductView(*product)
	return &view, nil
}
