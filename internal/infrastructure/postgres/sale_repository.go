package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ventas (id, cliente_nombre, cliente_dni, total, fecha_venta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CustomerName, sale.CustomerDNI, sale.Total,
		sale.SaleDate, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle.
func (r *SaleRepo) CreateDetail(ctx context.Context, detail *entity.SaleDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO detalle_ventas (id, venta_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		detail.ID, detail.SaleID, detail.ProductID, detail.Quantity,
		detail.UnitPrice, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// UpdateTotal fija el total de la venta (recalculado desde los subtotales).
func (r *SaleRepo) UpdateTotal(ctx context.Context, saleID string, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE ventas SET total = $2, updated_at = now() WHERE id = $1`,
		saleID, total,
	)
	if err != nil {
		return fmt.Errorf("update total venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Retorna nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, cliente_nombre, cliente_dni, total, fecha_venta, created_at, updated_at
		FROM ventas WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CustomerName, &s.CustomerDNI, &s.Total, &s.SaleDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &s, nil
}

// List lista todas las ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, cliente_nombre, cliente_dni, total, fecha_venta, created_at, updated_at
		FROM ventas ORDER BY fecha_venta DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.CustomerDNI, &s.Total,
			&s.SaleDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetDetailsBySaleID obtiene las líneas de una venta con el nombre del producto.
func (r *SaleRepo) GetDetailsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT d.id, d.venta_id, d.producto_id, p.nombre, d.cantidad, d.precio_unitario, d.subtotal
		FROM detalle_ventas d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.venta_id = $1 ORDER BY d.id`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalle ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.ProductName,
			&d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
