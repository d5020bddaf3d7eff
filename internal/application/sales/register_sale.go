package sales

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// dniPattern: DNI peruano, exactamente 8 dígitos ASCII.
var dniPattern = regexp.MustCompile(`^\d{8}$`)

// RegisterSaleUseCase registra una venta y descuenta el stock en una sola
// transacción: cabecera, una línea de detalle por ítem y un decremento de
// stock por producto, todo confirmado o revertido como unidad.
type RegisterSaleUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner, log *logger.Logger) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner, log: log}
}

// RegisterSale valida la venta, verifica y descuenta stock por línea dentro de
// una transacción y persiste cabecera y detalles. Los ítems se procesan en el
// orden recibido; el primer fallo aborta todo (no hay aplicación parcial).
//
// El total del cliente nunca se persiste: se recalcula con los precios de
// catálogo leídos dentro de la transacción. Un desajuste solo genera un log.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, in dto.RegisterSaleRequest) (*dto.RegisterSaleResponse, error) {
	// Validación rápida antes de tocar almacenamiento
	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: cliente_nombre es requerido", domain.ErrInvalidInput)
	}
	if !dniPattern.MatchString(in.CustomerDNI) {
		return nil, fmt.Errorf("%w: DNI debe tener 8 dígitos", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene ítems", domain.ErrInvalidInput)
	}
	for i, item := range in.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("%w: ítem %d sin producto_id", domain.ErrInvalidInput, i+1)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: ítem %d con cantidad inválida", domain.ErrInvalidInput, i+1)
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		CustomerName: customerName,
		CustomerDNI:  in.CustomerDNI,
		Total:        decimal.Zero,
		SaleDate:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	var total decimal.Decimal

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// 1) Cabecera con total en cero; el total real se fija al final
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		// 2) Ítems en el orden recibido. GetForUpdate bloquea la fila del
		// producto hasta el commit, así dos ventas concurrentes no pasan
		// ambas la verificación contra el mismo stock. La lectura dentro de
		// la transacción también hace que un producto repetido en la misma
		// venta vea los decrementos de las líneas anteriores (demanda
		// acumulada, no snapshot pre-transacción).
		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("producto %s no encontrado: %w", item.ProductID, domain.ErrNotFound)
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("stock insuficiente para producto %s: disponible %d, solicitado %d: %w",
					product.Name, product.Stock, item.Quantity, domain.ErrInsufficientStock)
			}

			// Precio autoritativo de catálogo, no el enviado por el cliente
			subtotal := product.Price.Mul(decimal.NewFromInt(item.Quantity))
			detail := &entity.SaleDetail{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			}
			if err := saleRepo.CreateDetail(ctx, detail); err != nil {
				return err
			}
			// UPDATE condicional (stock >= cantidad): segunda guarda además del lock
			if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
				return fmt.Errorf("producto %s: %w", product.Name, err)
			}
			total = total.Add(subtotal)
		}

		// 3) Total = suma de subtotales
		return saleRepo.UpdateTotal(ctx, sale.ID, total)
	})
	if err != nil {
		return nil, err
	}

	if !in.Total.IsZero() && !in.Total.Equal(total) {
		uc.log.Warn().
			Str("venta_id", sale.ID).
			Str("total_cliente", in.Total.String()).
			Str("total_calculado", total.String()).
			Msg("total enviado por el cliente no coincide con el calculado")
	}

	return &dto.RegisterSaleResponse{
		Message: "Venta registrada exitosamente",
		SaleID:  sale.ID,
		Total:   total,
	}, nil
}
