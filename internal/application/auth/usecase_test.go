package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stockmaster-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"admin": {
			ID: "user-admin", Username: "admin", PasswordHash: string(hash),
			Role: "admin", IsActive: true,
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "stockmaster-test",
	})
	return uc, repo
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newAuthFixture(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "user-admin", resp.UserID)
	assert.Equal(t, "admin", resp.Role)

	// El token emitido lleva los claims del usuario.
	userID, role, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-admin", userID)
	assert.Equal(t, "admin", role)
}

// Usuario inexistente y password incorrecta devuelven el mismo error, sin
// revelar cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Username: "no-existe", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo := newAuthFixture(t)
	repo.users["admin"].IsActive = false

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
