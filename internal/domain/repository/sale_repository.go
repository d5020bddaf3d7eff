package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus detalles.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateDetail(ctx context.Context, detail *entity.SaleDetail) error
	UpdateTotal(ctx context.Context, saleID string, total decimal.Decimal) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	GetDetailsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleDetail, error)
}
