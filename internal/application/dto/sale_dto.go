package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea de la venta tal como la envía el cliente.
// PrecioUnitario es informativo: el precio que se persiste es el de catálogo.
type SaleItemRequest struct {
	ProductID string          `json:"producto_id"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// RegisterSaleRequest entrada para registrar una venta.
// Total es informativo y nunca se persiste: el total se recalcula en el
// servidor con los precios de catálogo dentro de la transacción.
type RegisterSaleRequest struct {
	CustomerName string            `json:"cliente_nombre"`
	CustomerDNI  string            `json:"cliente_dni"`
	Items        []SaleItemRequest `json:"items"`
	Total        decimal.Decimal   `json:"total"`
}

// RegisterSaleResponse confirmación de venta registrada.
type RegisterSaleResponse struct {
	Message string          `json:"message"`
	SaleID  string          `json:"ventaId"`
	Total   decimal.Decimal `json:"total"`
}

// SaleItemResponse una línea en el listado de ventas (incluye nombre del producto).
type SaleItemResponse struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"nombre_producto"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse una venta con sus líneas.
type SaleResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"cliente_nombre"`
	CustomerDNI  string             `json:"cliente_dni"`
	Total        decimal.Decimal    `json:"total"`
	SaleDate     time.Time          `json:"fecha_venta"`
	Items        []SaleItemResponse `json:"items"`
}
