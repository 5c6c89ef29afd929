package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/PouyaBirvand/blito/internal/config"
	"github.com/PouyaBirvand/blito/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.  The editor ships
// with a single configured account; there is no user registration.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type verifyReq struct {
	Token string `json:"token"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Verify handles POST /api/auth.  The canvas client posts its token here on
// startup to learn whether it can talk to the protected endpoints.
func (h *AuthHandler) Verify(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Token) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}

	claims, err := utils.VerifyAccessToken(h.Cfg.JWTSecret, req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"valid": false, "error": "invalid token"})
	}
	return c.JSON(http.StatusOK, echo.Map{"valid": true, "claims": claims})
}

// Login handles POST /api/auth/login: verify the configured editor
// credential and hand back a signed access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	if req.Email != strings.ToLower(h.Cfg.EditorEmail) || !utils.VerifyPassword(h.Cfg.EditorPassHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
