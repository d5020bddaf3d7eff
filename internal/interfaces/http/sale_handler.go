package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/sales"
	"github.com/jhoicas/farmacia-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	registerUC *sales.RegisterSaleUseCase
	listUC     *sales.ListSalesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(registerUC *sales.RegisterSaleUseCase, listUC *sales.ListSalesUseCase) *SaleHandler {
	return &SaleHandler{registerUC: registerUC, listUC: listUC}
}

// Create registra una venta y descuenta el stock en una transacción.
// Validación, producto inexistente y stock insuficiente responden 400 con
// mensaje descriptivo (contrato del cliente web); el resto 500 opaco.
// POST /api/ventas
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.registerUC.RegisterSale(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al registrar la venta"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista todas las ventas con sus ítems.
// GET /api/ventas
func (h *SaleHandler) List(c *fiber.Ctx) error {
	ventas, err := h.listUC.ListSales(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error en el servidor"})
	}
	return c.JSON(ventas)
}
