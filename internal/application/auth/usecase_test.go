package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/farmacia-api/pkg/jwt"
)

// memUserRepo repositorio de usuarios en memoria, indexado por email.
type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func testAuthUseCase() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "farmacia-api-test",
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaUsuarioConHash(t *testing.T) {
	uc, repo := testAuthUseCase()

	resp, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "test@test.com",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "test@test.com", resp.Email)
	assert.NotEmpty(t, resp.ID)

	guardado := repo.byEmail["test@test.com"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "123456", guardado.PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := testAuthUseCase()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "test@test.com", Password: "123456",
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "test@test.com", Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitoDevuelveTokenValido(t *testing.T) {
	uc, _ := testAuthUseCase()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "test@test.com", Password: "123456",
	})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "test@test.com", Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Login exitoso", resp.Message)
	require.NotEmpty(t, resp.Token)

	// El token debe validar con el mismo secret y llevar el email
	_, email, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "test@test.com", email)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := testAuthUseCase()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@test.com", Password: "123456",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := testAuthUseCase()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "test@test.com", Password: "123456",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "test@test.com", Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
