package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProductUseCase casos de uso CRUD para productos del catálogo.
// El stock solo se modifica aquí al crear/editar el producto; las ventas lo
// descuentan por su propia transacción.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	product, err := uc.buildProduct(in)
	if err != nil {
		return nil, err
	}
	product.ID = uuid.New().String()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{
		Message:   "Producto creado exitosamente",
		ProductID: product.ID,
	}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto existente (formulario completo, como el cliente web).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	product, err := uc.buildProduct(in)
	if err != nil {
		return err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, product)
}

// List lista productos, opcionalmente filtrados por término de búsqueda
// (nombre, código o laboratorio, sin distinguir tildes) y por categoría exacta.
func (uc *ProductUseCase) List(ctx context.Context, search, category string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := normalizeForSearch(search)
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if needle != "" && !productMatches(p, needle) {
			continue
		}
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// buildProduct valida el request y lo convierte a entidad (sin ID ni timestamps).
func (uc *ProductUseCase) buildProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Code == "" || in.Name == "" || in.Category == "" || in.Laboratory == "" ||
		in.Presentation == "" || in.ExpirationDate == "" {
		return nil, fmt.Errorf("%w: todos los campos requeridos deben ser proporcionados", domain.ErrInvalidInput)
	}
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: precio debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}
	expiration, err := time.Parse(dateLayout, in.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fechaVencimiento debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return &entity.Product{
		Code:           in.Code,
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Price:          in.Price,
		Stock:          in.Stock,
		ExpirationDate: expiration,
		Laboratory:     in.Laboratory,
		Presentation:   in.Presentation,
	}, nil
}

func productMatches(p *entity.Product, needle string) bool {
	return strings.Contains(normalizeForSearch(p.Name), needle) ||
		strings.Contains(normalizeForSearch(p.Code), needle) ||
		strings.Contains(normalizeForSearch(p.Laboratory), needle)
}

// normalizeForSearch pasa a minúsculas y elimina marcas diacríticas
// (NFD + strip Mn + NFC) para que "jarabe" encuentre "Jarabé".
func normalizeForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, s)
	if err != nil {
		normalized = s
	}
	return strings.ToLower(strings.TrimSpace(normalized))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price,
		Stock:          p.Stock,
		ExpirationDate: p.ExpirationDate.Format(dateLayout),
		Laboratory:     p.Laboratory,
		Presentation:   p.Presentation,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
