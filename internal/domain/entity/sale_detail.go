package entity

import "github.com/shopspring/decimal"

// SaleDetail representa una línea de detalle de una venta.
// PrecioUnitario es el precio de catálogo al momento de la venta (snapshot);
// Subtotal = Cantidad × PrecioUnitario.
type SaleDetail struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string // solo lectura, viene del JOIN en listados
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
