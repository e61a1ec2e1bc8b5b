package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Documental-api/internal/application/auth"
	"github.com/jhoicas/Documental-api/internal/application/dto"
	"github.com/jhoicas/Documental-api/internal/domain"
	"github.com/jhoicas/Documental-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Documental-api/internal/interfaces/http"
)

// Fakes de persistencia para el flujo de auth por HTTP.

type memUserRepo struct {
	byUsername map[string]*entity.User
	byID       map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	r.byUsername[u.Username] = u
	r.byID[u.ID] = u
	return nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *memUserRepo) GetByUsername(u string) (*entity.User, error) { return r.byUsername[u], nil }

type memCompanyRepo struct{ byID map[string]*entity.Company }

func (r *memCompanyRepo) Create(c *entity.Company) error { r.byID[c.ID] = c; return nil }

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.byID[id], nil }

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) { return nil, nil }

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	companies := &memCompanyRepo{byID: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Acme Films", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}}
	uc := auth.NewAuthUseCase(newMemUserRepo(), companies, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	h := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	guard := apphttp.AuthMiddleware(testJWTSecret)
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/validate-token", guard, h.ValidateToken)
	app.Get("/user", guard, h.CurrentUser)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Flujo completo: registro → login → validate-token → user.
func TestAuthHandler_FlujoCompleto(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/register", dto.RegisterRequest{
		Username: "maria", Password: "super-secreta-123", CompanyID: testCompanyID,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/login", dto.LoginRequest{Username: "maria", Password: "super-secreta-123"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/validate-token", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	vResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer vResp.Body.Close()
	require.Equal(t, http.StatusOK, vResp.StatusCode)

	var claim dto.ClaimResponse
	require.NoError(t, json.NewDecoder(vResp.Body).Decode(&claim))
	assert.Equal(t, login.User.ID, claim.UserID)
	assert.Equal(t, testCompanyID, claim.CompanyID)

	req = httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	uResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer uResp.Body.Close()
	require.Equal(t, http.StatusOK, uResp.StatusCode)

	var user dto.UserResponse
	require.NoError(t, json.NewDecoder(uResp.Body).Decode(&user))
	assert.Equal(t, "maria", user.Username)
}

// Registro duplicado responde 400 con el código USERNAME_EXISTS.
func TestAuthHandler_RegistroDuplicado_Retorna400(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/register", dto.RegisterRequest{
		Username: "maria", Password: "super-secreta-123", CompanyID: testCompanyID,
	})
	resp.Body.Close()

	resp = postJSON(t, app, "/register", dto.RegisterRequest{
		Username: "maria", Password: "otra-password-456", CompanyID: testCompanyID,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "USERNAME_EXISTS", e.Code)
}

// Credenciales inválidas responden 401 con el mismo cuerpo exista o no el usuario.
func TestAuthHandler_LoginInvalido_Retorna401Simetrico(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/register", dto.RegisterRequest{
		Username: "maria", Password: "super-secreta-123", CompanyID: testCompanyID,
	})
	resp.Body.Close()

	badPass := postJSON(t, app, "/login", dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	defer badPass.Body.Close()
	noUser := postJSON(t, app, "/login", dto.LoginRequest{Username: "nadie", Password: "incorrecta"})
	defer noUser.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, badPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, noUser.StatusCode)

	var e1, e2 dto.ErrorResponse
	require.NoError(t, json.NewDecoder(badPass.Body).Decode(&e1))
	require.NoError(t, json.NewDecoder(noUser.Body).Decode(&e2))
	assert.Equal(t, e1, e2, "la respuesta no debe revelar si la cuenta existe")
}

// Password corto se rechaza en el borde, antes de llegar al caso de uso.
func TestAuthHandler_PasswordCorto_Retorna400(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/register", dto.RegisterRequest{
		Username: "maria", Password: "corta", CompanyID: testCompanyID,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
