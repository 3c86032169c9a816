package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rental-pro/internal/application/auth"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/infrastructure/memory"
	pkgjwt "github.com/tu-usuario/rental-pro/pkg/jwt"
)

const testSecret = "auth-test-secret"

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewUserRepository(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "rental-pro-test",
	})
}

func registro() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "admin@rental-pro.local",
		Password: "contraseña-larga",
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	}
}

func TestRegisterUser_EmailUnico(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.RegisterUser(registro())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	_, err = uc.RegisterUser(registro())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Sin rol explícito el usuario entra como visor, el rol de menos privilegio.
func TestRegisterUser_RolPorDefectoVisor(t *testing.T) {
	uc := newAuthUC()

	in := registro()
	in.Role = ""
	out, err := uc.RegisterUser(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVisor, out.Role)
}

func TestRegisterUser_RolDesconocido(t *testing.T) {
	uc := newAuthUC()

	in := registro()
	in.Role = "superusuario"
	_, err := uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El token emitido en login lleva el rol del usuario: el middleware RBAC
// decide con el claim, sin volver a la base de datos.
func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(registro())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@rental-pro.local", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@rental-pro.local", out.User.Email)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Email inexistente y contraseña incorrecta responden igual: unauthorized,
// sin revelar cuál de los dos falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(registro())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "otro@rental-pro.local", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@rental-pro.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
