package repository

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción. Retorna nil si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// DecrementStock resta cantidad al stock de forma condicional
	// (WHERE stock >= cantidad). Retorna domain.ErrInsufficientStock si
	// ninguna fila cumple la condición.
	DecrementStock(ctx context.Context, id string, quantity int64) error
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
