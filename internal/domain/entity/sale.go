package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. Inmutable después de creada:
// no hay rutas de actualización ni borrado, solo la transacción de registro.
type Sale struct {
	ID            string
	CustomerName  string
	CustomerDNI   string // exactamente 8 dígitos
	Total         decimal.Decimal
	SaleDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
