package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/usecase"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de test: repositorio de productos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) DecrementStock(_ context.Context, id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok || p.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func requestValido() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:           "MED001",
		Name:           "Paracetamol 500mg",
		Description:    "Analgésico y antipirético",
		Category:       "Analgésicos",
		Price:          decimal.NewFromFloat(15.50),
		Stock:          100,
		ExpirationDate: "2027-06-30",
		Laboratory:     "Genfar",
		Presentation:   "Tabletas",
	}
}

func productoCatalogo(id, code, nombre, categoria, laboratorio string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:             id,
		Code:           code,
		Name:           nombre,
		Category:       categoria,
		Price:          decimal.NewFromFloat(10.00),
		Stock:          10,
		ExpirationDate: now.AddDate(1, 0, 0),
		Laboratory:     laboratorio,
		Presentation:   "Tabletas",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update: validación
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Create_Exito(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.Create(context.Background(), requestValido())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Producto creado exitosamente", resp.Message)
	assert.NotEmpty(t, resp.ProductID)

	guardado, _ := repo.GetByID(context.Background(), resp.ProductID)
	require.NotNil(t, guardado)
	assert.Equal(t, "MED001", guardado.Code)
	assert.Equal(t, 2027, guardado.ExpirationDate.Year())
}

func TestProductUseCase_Create_CamposRequeridos(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*dto.CreateProductRequest)
	}{
		{"sin código", func(r *dto.CreateProductRequest) { r.Code = "" }},
		{"sin nombre", func(r *dto.CreateProductRequest) { r.Name = "" }},
		{"sin categoría", func(r *dto.CreateProductRequest) { r.Category = "" }},
		{"sin laboratorio", func(r *dto.CreateProductRequest) { r.Laboratory = "" }},
		{"sin presentación", func(r *dto.CreateProductRequest) { r.Presentation = "" }},
		{"sin fecha de vencimiento", func(r *dto.CreateProductRequest) { r.ExpirationDate = "" }},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			repo := newMemProductRepo()
			uc := usecase.NewProductUseCase(repo)

			in := requestValido()
			tc.mutar(&in)

			_, err := uc.Create(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.products, "no debe persistirse nada")
		})
	}
}

func TestProductUseCase_Create_PrecioYStockInvalidos(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	in := requestValido()
	in.Price = decimal.Zero
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero debe rechazarse")

	in = requestValido()
	in.Stock = -1
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo debe rechazarse")

	in = requestValido()
	in.ExpirationDate = "30/06/2027"
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha fuera de formato debe rechazarse")
}

func TestProductUseCase_Update_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	err := uc.Update(context.Background(), "no-existe", requestValido())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Update_ConservaCreatedAt(t *testing.T) {
	original := productoCatalogo("p1", "MED001", "Paracetamol 500mg", "Analgésicos", "Genfar")
	original.CreatedAt = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	repo := newMemProductRepo(original)
	uc := usecase.NewProductUseCase(repo)

	in := requestValido()
	in.Name = "Paracetamol 650mg"
	require.NoError(t, uc.Update(context.Background(), "p1", in))

	actualizado, _ := repo.GetByID(context.Background(), "p1")
	require.NotNil(t, actualizado)
	assert.Equal(t, "Paracetamol 650mg", actualizado.Name)
	assert.Equal(t, original.CreatedAt, actualizado.CreatedAt)
	assert.True(t, actualizado.UpdatedAt.After(original.CreatedAt))
}

// ──────────────────────────────────────────────────────────────────────────────
// List: búsqueda sin tildes y filtro por categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_List_BusquedaIgnoraTildes(t *testing.T) {
	repo := newMemProductRepo(
		productoCatalogo("p1", "MED001", "Jarabé para la tos", "Antitusivos", "Genfar"),
		productoCatalogo("p2", "MED002", "Ibuprofeno 400mg", "Antiinflamatorios", "Bayer"),
	)
	uc := usecase.NewProductUseCase(repo)

	// "jarabe" sin tilde debe encontrar "Jarabé"
	out, err := uc.List(context.Background(), "jarabe", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)

	// y la búsqueda con tilde también funciona al revés
	out, err = uc.List(context.Background(), "jarabé", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestProductUseCase_List_BuscaPorCodigoYLaboratorio(t *testing.T) {
	repo := newMemProductRepo(
		productoCatalogo("p1", "MED001", "Paracetamol 500mg", "Analgésicos", "Genfar"),
		productoCatalogo("p2", "MED002", "Ibuprofeno 400mg", "Antiinflamatorios", "Bayer"),
	)
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List(context.Background(), "med002", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)

	out, err = uc.List(context.Background(), "bayer", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)
}

func TestProductUseCase_List_FiltroPorCategoriaExacta(t *testing.T) {
	repo := newMemProductRepo(
		productoCatalogo("p1", "MED001", "Paracetamol 500mg", "Analgésicos", "Genfar"),
		productoCatalogo("p2", "MED002", "Ibuprofeno 400mg", "Antiinflamatorios", "Bayer"),
		productoCatalogo("p3", "MED003", "Aspirina 100mg", "Analgésicos", "Bayer"),
	)
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List(context.Background(), "", "Analgésicos")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	// búsqueda y categoría combinadas
	out, err = uc.List(context.Background(), "aspirina", "Analgésicos")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p3", out[0].ID)
}

func TestProductUseCase_GetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
