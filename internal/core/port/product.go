package port

import (
	"context"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	Save(ctx context.Context, product domain.Product) error
}
