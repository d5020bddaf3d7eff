package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto farmacéutico del inventario.
// Stock nunca es negativo: el decremento se hace con UPDATE condicional dentro
// de la transacción de venta.
type Product struct {
	ID              string
	Code            string // código único (ej. MED001)
	Name            string
	Description     string
	Category        string
	Price           decimal.Decimal // precio de venta unitario
	Stock           int64
	ExpirationDate  time.Time
	Laboratory      string
	Presentation    string // tabletas, jarabe, cápsulas, etc.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
