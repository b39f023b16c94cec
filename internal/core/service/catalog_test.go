package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/port/mock"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupCatalogService(t *testing.T) (*CatalogService, *mock.MockProductPort) {
	ctrl := gomock.NewController(t)
	productRepo := mock.NewMockProductPort(ctrl)
	return NewCatalogService(productRepo), productRepo
}

func TestCatalogService_List(t *testing.T) {
	t.Run("seed catalog has no adjustments", func(t *testing.T) {
		svc, productRepo := setupCatalogService(t)
		productRepo.EXPECT().GetAll(gomock.Any()).Return(domain.SeedProducts(), nil)

		views, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(views) != 5 {
			t.Fatalf("expected 5 products, got %d", len(views))
		}
		for _, v := range views {
			if !v.Price.Equal(v.BasePrice) {
				t.Errorf("%s: expected unadjusted price %s, got %s", v.Name, v.BasePrice, v.Price)
			}
		}
	})

	t.Run("recomputes price from current counters", func(t *testing.T) {
		svc, productRepo := setupCatalogService(t)
		productRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.Product{
			{ID: 1, Name: "Hot", Price: domain.NewAmountFromInt(200), Stock: 5, Sales: 40},
		}, nil)

		views, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !views[0].Price.Equal(domain.NewAmountFromInt(220)) {
			t.Fatalf("expected surge price 220, got %s", views[0].Price)
		}
		if views[0].PriceRule != domain.PriceRuleSurge {
			t.Fatalf("expected surge rule, got %s", views[0].PriceRule)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		svc, productRepo := setupCatalogService(t)
		productRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db down"))

		if _, err := svc.List(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestCatalogService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, productRepo := setupCatalogService(t)
		mouse := domain.SeedProducts()[2]
		productRepo.EXPECT().GetByID(gomock.Any(), domain.ID(3)).Return(&mouse, nil)

		view, err := svc.Get(context.Background(), 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if view.Name != "Mouse" {
			t.Fatalf("expected Mouse, got %q", view.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, productRepo := setupCatalogService(t)
		productRepo.EXPECT().GetByID(gomock.Any(), domain.ID(99)).Return(nil, domain.ErrProductNotFound)

		_, err := svc.Get(context.Background(), 99)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("repository error passes through", func(t *testing.T) {
		svc, productRepo := setupCatalogService(t)
		boom := errors.New("db down")
		productRepo.EXPECT().GetByID(gomock.Any(), domain.ID(1)).Return(nil, boom)

		_, err := svc.Get(context.Background(), 1)
		if !errors.Is(err, boom) {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
