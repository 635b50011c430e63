package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/abdodolh14141/Website-Movies/internal/application/command"
	"github.com/abdodolh14141/Website-Movies/internal/application/interfaces"
	"github.com/abdodolh14141/Website-Movies/internal/infrastructure"
)

type AuthHandler struct {
	auth  interfaces.AuthService
	oauth *infrastructure.GoogleOAuth
}

func NewAuthHandler(auth interfaces.AuthService, oauth *infrastructure.GoogleOAuth) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		oauth: oauth,
	}
}

// Login handles POST /api/auth/login, the credentials authorize step that
// mints the session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var authorizeCommand command.AuthorizeCommand
	if err := c.Bind(&authorizeCommand); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body.")
	}

	if authorizeCommand.Email == "" || authorizeCommand.Password == "" {
		return fail(c, http.StatusBadRequest, "Email and password are required")
	}

	result, err := h.auth.Authorize(c.Request().Context(), &authorizeCommand)
	if err != nil {
		return translateError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// Session handles GET /api/auth/session: it mirrors the bearer token into
// the session view, or 401 once the token is expired or absent.
func (h *AuthHandler) Session(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return fail(c, http.StatusUnauthorized, "Not authenticated")
	}

	session, err := h.auth.Session(token)
	if err != nil {
		return translateError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    session.User,
		"expires": session.Expires,
	})
}

// Logout handles POST /api/auth/logout. Sessions are stateless, so logout
// is the client discarding its token; the endpoint only confirms.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Logged out",
	})
}

// GoogleLogin handles GET /api/auth/google/login by redirecting to the
// provider's consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	if !h.oauth.Enabled() {
		return fail(c, http.StatusServiceUnavailable, "Google sign-in is not configured")
	}
	return c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthURL())
}

// GoogleCallback handles GET /api/auth/google/callback: it exchanges the
// code for a verified profile, runs the OAuth bridge and mints the session.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	if !h.oauth.Enabled() {
		return fail(c, http.StatusServiceUnavailable, "Google sign-in is not configured")
	}

	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return fail(c, http.StatusBadRequest, "Missing state or code")
	}

	profile, err := h.oauth.Exchange(c.Request().Context(), state, code)
	if err != nil {
		if err == infrastructure.ErrInvalidState {
			return fail(c, http.StatusUnauthorized, "Invalid or expired sign-in attempt")
		}
		return fail(c, http.StatusBadGateway, "Google sign-in failed")
	}

	result, err := h.auth.SignInWithProfile(c.Request().Context(), profile.Email, profile.Name)
	if err != nil {
		return translateError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
