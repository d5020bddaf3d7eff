package sales

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// ListSalesUseCase lista ventas con sus líneas (solo lectura, sobre el pool).
type ListSalesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewListSalesUseCase construye el caso de uso.
func NewListSalesUseCase(saleRepo repository.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// ListSales devuelve todas las ventas, más recientes primero, cada una con sus ítems.
func (uc *ListSalesUseCase) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	ventas, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(ventas))
	for _, v := range ventas {
		details, err := uc.saleRepo.GetDetailsBySaleID(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		items := make([]dto.SaleItemResponse, 0, len(details))
		for _, d := range details {
			items = append(items, dto.SaleItemResponse{
				ProductID:   d.ProductID,
				ProductName: d.ProductName,
				Quantity:    d.Quantity,
				UnitPrice:   d.UnitPrice,
				Subtotal:    d.Subtotal,
			})
		}
		out = append(out, dto.SaleResponse{
			ID:           v.ID,
			CustomerName: v.CustomerName,
			CustomerDNI:  v.CustomerDNI,
			Total:        v.Total,
			SaleDate:     v.SaleDate,
			Items:        items,
		})
	}
	return out, nil
}
