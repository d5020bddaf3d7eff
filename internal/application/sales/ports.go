package sales

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción SQL con repositorios atados a
// ella. Commit si fn retorna nil; Rollback en cualquier otro caso (error,
// panic o cancelación del contexto). Es la unidad de trabajo de la venta.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
