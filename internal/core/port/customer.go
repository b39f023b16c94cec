package port

import (
	"context"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CustomerPort interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) error
	Save(ctx context.Context, customer domain.Customer) error
}
