package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Las claves JSON siguen el formato del cliente web (fechaVencimiento en camelCase).
type CreateProductRequest struct {
	Code           string          `json:"codigo"`
	Name           string          `json:"nombre"`
	Description    string          `json:"descripcion"`
	Category       string          `json:"categoria"`
	Price          decimal.Decimal `json:"precio"`
	Stock          int64           `json:"stock"`
	ExpirationDate string          `json:"fechaVencimiento"` // YYYY-MM-DD
	Laboratory     string          `json:"laboratorio"`
	Presentation   string          `json:"presentacion"`
}

// UpdateProductRequest entrada para actualizar un producto (todos los campos requeridos,
// igual que el cliente web que siempre reenvía el formulario completo).
type UpdateProductRequest = CreateProductRequest

// ProductResponse salida de un producto (claves snake_case como las columnas).
type ProductResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"codigo"`
	Name           string          `json:"nombre"`
	Description    string          `json:"descripcion"`
	Category       string          `json:"categoria"`
	Price          decimal.Decimal `json:"precio"`
	Stock          int64           `json:"stock"`
	ExpirationDate string          `json:"fecha_vencimiento"` // YYYY-MM-DD
	Laboratory     string          `json:"laboratorio"`
	Presentation   string          `json:"presentacion"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateProductResponse confirmación de creación.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}
