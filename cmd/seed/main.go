// seed crea el esquema de la farmacia (usuarios, productos, ventas,
// detalle_ventas) y carga datos de ejemplo: un usuario de prueba y el catálogo
// inicial de productos farmacéuticos.
//
// Uso: go run ./cmd/seed
// Lee la configuración de la base de datos igual que la API (env / .env).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/farmacia-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
	id            UUID PRIMARY KEY,
	email         VARCHAR(255) UNIQUE NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS productos (
	id                UUID PRIMARY KEY,
	codigo            VARCHAR(50) UNIQUE NOT NULL,
	nombre            VARCHAR(255) NOT NULL,
	descripcion       TEXT NOT NULL DEFAULT '',
	categoria         VARCHAR(100) NOT NULL,
	precio            NUMERIC(10,2) NOT NULL CHECK (precio >= 0),
	stock             INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	fecha_vencimiento DATE NOT NULL,
	laboratorio       VARCHAR(255) NOT NULL,
	presentacion      VARCHAR(100) NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_productos_codigo ON productos (codigo);
CREATE INDEX IF NOT EXISTS idx_productos_categoria ON productos (categoria);
CREATE INDEX IF NOT EXISTS idx_productos_fecha_vencimiento ON productos (fecha_vencimiento);

CREATE TABLE IF NOT EXISTS ventas (
	id             UUID PRIMARY KEY,
	cliente_nombre VARCHAR(255) NOT NULL,
	cliente_dni    CHAR(8) NOT NULL,
	total          NUMERIC(10,2) NOT NULL DEFAULT 0,
	fecha_venta    TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- La venta es dueña de sus detalles (CASCADE); el producto referenciado no se
-- puede borrar mientras tenga ventas (RESTRICT).
CREATE TABLE IF NOT EXISTS detalle_ventas (
	id              UUID PRIMARY KEY,
	venta_id        UUID NOT NULL REFERENCES ventas (id) ON DELETE CASCADE,
	producto_id     UUID NOT NULL REFERENCES productos (id) ON DELETE RESTRICT,
	cantidad        INTEGER NOT NULL CHECK (cantidad > 0),
	precio_unitario NUMERIC(10,2) NOT NULL,
	subtotal        NUMERIC(10,2) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_detalle_ventas_venta ON detalle_ventas (venta_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conectar a PostgreSQL", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema", err)
	}
	fmt.Println("Esquema creado o ya existía")

	if err := seedUser(ctx, pool); err != nil {
		fail("crear usuario de prueba", err)
	}
	if err := seedProducts(ctx, pool); err != nil {
		fail("cargar productos de ejemplo", err)
	}
	fmt.Println("Configuración de base de datos completada")
}

// seedUser inserta el usuario de prueba test@test.com / 123456 si no existe.
func seedUser(ctx context.Context, q postgres.Querier) error {
	userRepo := postgres.NewUserRepository(q)
	existing, err := userRepo.GetByEmail(ctx, "test@test.com")
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Println("Usuario de prueba ya existía")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        "test@test.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}
	fmt.Println("Usuario de prueba creado: test@test.com / 123456")
	return nil
}

// seedProducts inserta el catálogo inicial; omite los códigos que ya existen.
func seedProducts(ctx context.Context, q postgres.Querier) error {
	productRepo := postgres.NewProductRepository(q)
	now := time.Now()
	samples := []entity.Product{
		{
			Code: "MED001", Name: "Paracetamol 500mg",
			Description: "Analgésico y antipirético para el alivio del dolor y fiebre",
			Category:    "Analgésicos", Price: decimal.NewFromFloat(15.50), Stock: 100,
			ExpirationDate: now.AddDate(2, 0, 0), Laboratory: "Genfar", Presentation: "Tabletas",
		},
		{
			Code: "MED002", Name: "Ibuprofeno 400mg",
			Description: "Antiinflamatorio no esteroideo",
			Category:    "Antiinflamatorios", Price: decimal.NewFromFloat(25.75), Stock: 50,
			ExpirationDate: now.AddDate(2, 0, 0), Laboratory: "Bayer", Presentation: "Cápsulas",
		},
		{
			Code: "MED003", Name: "Amoxicilina 500mg",
			Description: "Antibiótico de amplio espectro",
			Category:    "Antibióticos", Price: decimal.NewFromFloat(35.00), Stock: 30,
			ExpirationDate: now.AddDate(1, 6, 0), Laboratory: "Pfizer", Presentation: "Cápsulas",
		},
		{
			Code: "MED004", Name: "Loratadina 10mg",
			Description: "Antihistamínico para alergias",
			Category:    "Antihistamínicos", Price: decimal.NewFromFloat(12.00), Stock: 80,
			ExpirationDate: now.AddDate(3, 0, 0), Laboratory: "La Santé", Presentation: "Tabletas",
		},
	}
	inserted := 0
	for i := range samples {
		p := &samples[i]
		existing, err := productRepo.GetByCode(ctx, p.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		p.ID = uuid.New().String()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productRepo.Create(ctx, p); err != nil {
			return err
		}
		inserted++
	}
	fmt.Printf("Productos de ejemplo insertados: %d\n", inserted)
	return nil
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
