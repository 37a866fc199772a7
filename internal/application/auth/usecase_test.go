package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jstringer1212/plant-review-api/internal/application/auth"
	"github.com/jstringer1212/plant-review-api/internal/application/dto"
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	pkgjwt "github.com/jstringer1212/plant-review-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "plant-review-test",
}

// fakeUserRepo fake en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "password123",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConHashYToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	resp, err := uc.Register(registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "john.doe@example.com", resp.User.Email)
	assert.Equal(t, entity.RoleUser, resp.User.Role, "todo registro entra como user")
	assert.Equal(t, entity.StatusActive, resp.User.Status)

	// El password se persiste hasheado con bcrypt, nunca en claro.
	stored, _ := repo.GetByID(resp.User.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))

	// El token emitido es verificable y lleva la identidad del usuario.
	claims, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	reg, err := uc.Register(registerRequest())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "john.doe@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.UserID)
	assert.Equal(t, "John", resp.FirstName)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "john.doe@example.com", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Cuenta desactivada: credenciales correctas pero sin acceso.
func TestLogin_CuentaInactivaRechazada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	reg, err := uc.Register(registerRequest())
	require.NoError(t, err)

	stored, _ := repo.GetByID(reg.User.ID)
	stored.Status = entity.StatusInactive

	_, err = uc.Login(dto.LoginRequest{Email: "john.doe@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ── Protect ──────────────────────────────────────────────────────────────────

func TestProtect_TokenValido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	reg, err := uc.Register(registerRequest())
	require.NoError(t, err)

	claims, err := uc.Protect(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "john.doe@example.com", claims.Email)
	assert.False(t, claims.ExpiresAt.IsZero())
}

// Malformado, firma ajena o expirado: siempre ErrUnauthorized, sin distinguir causa.
func TestProtect_TokenInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Protect("no.es.un-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ajeno, err := pkgjwt.Generate("otro-secret", pkgjwt.Identity{UserID: "x"}, testJWT.Issuer, 60)
	require.NoError(t, err)
	_, err = uc.Protect(ajeno)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expirado, err := pkgjwt.Generate(testJWT.Secret, pkgjwt.Identity{UserID: "x"}, testJWT.Issuer, -1)
	require.NoError(t, err)
	_, err = uc.Protect(expirado)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
