package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/PouyaBirvand/blito/internal/config"
	"github.com/PouyaBirvand/blito/internal/utils"
)

func testAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	hash, err := utils.HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthHandler(config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		EditorEmail:    "editor@example.com",
		EditorPassHash: hash,
	})
}

func postJSON(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginSuccess(t *testing.T) {
	h := testAuthHandler(t)

	c, rec := postJSON(t, `{"email":"Editor@Example.com","password":"hunter2"}`)
	require.NoError(t, h.Login(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)

	claims, err := utils.VerifyAccessToken("test-secret", resp.Access.Token)
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", claims["sub"])
}

func TestLoginWrongPassword(t *testing.T) {
	h := testAuthHandler(t)

	c, rec := postJSON(t, `{"email":"editor@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := testAuthHandler(t)

	c, rec := postJSON(t, `{"email":"intruder@example.com","password":"hunter2"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyValidToken(t *testing.T) {
	h := testAuthHandler(t)
	at, err := utils.NewAccessToken("test-secret", "editor@example.com", 15)
	require.NoError(t, err)

	c, rec := postJSON(t, fmt.Sprintf(`{"token":%q}`, at.Token))
	require.NoError(t, h.Verify(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestVerifyRejectsBadToken(t *testing.T) {
	h := testAuthHandler(t)

	c, rec := postJSON(t, `{"token":"garbage"}`)
	require.NoError(t, h.Verify(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
}

func TestVerifyRequiresToken(t *testing.T) {
	h := testAuthHandler(t)

	c, rec := postJSON(t, `{}`)
	require.NoError(t, h.Verify(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
