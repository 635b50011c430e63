package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdodolh14141/Website-Movies/web"
)

func renderPage(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestCompleteAccountPage_PostsToCompletionEndpoint(t *testing.T) {
	pages := NewPageHandler(nil, nil)

	rec := renderPage(t, pages.CompleteAccount)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `action="/api/user/createNewAccount"`)
	assert.Contains(t, body, `name="name"`)
	assert.Contains(t, body, `name="password"`)
	assert.Contains(t, body, `name="age"`)
}

func TestLoginPage_LinksAccountCompletion(t *testing.T) {
	pages := NewPageHandler(nil, nil)

	rec := renderPage(t, pages.Login)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/completeAccount"`)
}
