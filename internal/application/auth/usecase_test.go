package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/auth"
	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/pos-ferreteria-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserRepo implementación en memoria de repository.UserRepository.
type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range f.users {
		if existing.ID == u.ID {
			f.users[i] = u
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUserRepo) Count() (int, error) { return len(f.users), nil }

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 1440,
		Issuer:     "pos-ferreteria-test",
	})
}

func storedUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "11111111-1111-1111-1111-111111111111",
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Usuario",
		Role:         entity.RoleAdmin,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro: máquina de estados Abierto → Cerrado
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SinUsuarios_CreaAdminConToken(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{Email: "dueno@ferreteria.co", Password: "secreto-largo"})
	require.NoError(t, err)

	assert.Equal(t, "dueno@ferreteria.co", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role, "el primer usuario es admin")
	assert.Equal(t, "dueno", out.User.Name, "el nombre por defecto es la parte local del email")
	assert.NotEmpty(t, out.Token)
	assert.Len(t, repo.users, 1)

	// El hash persistido debe verificar contra la contraseña original
	err = bcrypt.CompareHashAndPassword([]byte(repo.users[0].PasswordHash), []byte("secreto-largo"))
	assert.NoError(t, err)
}

func TestRegister_ConUsuarioExistente_RegistroCerrado(t *testing.T) {
	repo := &fakeUserRepo{users: []*entity.User{storedUser(t, "dueno@ferreteria.co", "secreto")}}
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "otro@ferreteria.co", Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
	assert.Len(t, repo.users, 1, "no debe crearse ningún usuario adicional")

	// Cerrado es terminal: reintentos con cualquier payload siguen rechazados
	_, err = uc.Register(dto.RegisterRequest{Email: "tercero@ferreteria.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegister_SinEmailOPassword_EntradaInvalida(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInitialized(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})
	ok, err := uc.Initialized()
	require.NoError(t, err)
	assert.False(t, ok, "sin usuarios el sistema no está inicializado")

	uc = newUseCase(&fakeUserRepo{users: []*entity.User{storedUser(t, "a@b.com", "secret")}})
	ok, err = uc.Initialized()
	require.NoError(t, err)
	assert.True(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_TokenConEmail(t *testing.T) {
	repo := &fakeUserRepo{users: []*entity.User{storedUser(t, "a@b.com", "secret")}}
	uc := newUseCase(repo)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email, "el payload del token lleva el email del usuario")
	assert.Equal(t, repo.users[0].ID, claims.UserID)
}

func TestLogin_PasswordIncorrecto_NoAutorizado(t *testing.T) {
	repo := &fakeUserRepo{users: []*entity.User{storedUser(t, "a@b.com", "secret")}}
	uc := newUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_NoAutorizado(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@b.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización de perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_PasswordActualIncorrecto_NoModifica(t *testing.T) {
	user := storedUser(t, "a@b.com", "secret")
	repo := &fakeUserRepo{users: []*entity.User{user}}
	uc := newUseCase(repo)

	nuevo := "Nuevo Nombre"
	_, err := uc.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		CurrentPassword: "equivocado",
		Name:            &nuevo,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Usuario", repo.users[0].Name, "el perfil no debe cambiar")
}

func TestUpdateProfile_CambiaNombreEmailYPassword(t *testing.T) {
	user := storedUser(t, "a@b.com", "secret")
	repo := &fakeUserRepo{users: []*entity.User{user}}
	uc := newUseCase(repo)

	nombre := "Dueña"
	email := "duena@ferreteria.co"
	password := "nueva-contraseña"
	out, err := uc.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		CurrentPassword: "secret",
		Name:            &nombre,
		Email:           &email,
		NewPassword:     &password,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dueña", out.Name)
	assert.Equal(t, "duena@ferreteria.co", out.Email)
	err = bcrypt.CompareHashAndPassword([]byte(repo.users[0].PasswordHash), []byte("nueva-contraseña"))
	assert.NoError(t, err, "la nueva contraseña debe quedar hasheada")
}
