package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abdodolh14141/Website-Movies/internal/application/services"
	"github.com/abdodolh14141/Website-Movies/internal/catalog"
	"github.com/abdodolh14141/Website-Movies/internal/domain/entities"
	"github.com/abdodolh14141/Website-Movies/internal/domain/repositories"
	"github.com/abdodolh14141/Website-Movies/internal/infrastructure"
)

// Response is the structured body every endpoint returns:
// {success, message, user} on the user endpoints, success+message elsewhere.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    interface{} `json:"user,omitempty"`
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{Success: false, Message: message})
}

// translateError maps service errors onto the error taxonomy: validation
// 400, conflict 409, authorization 401, not-found 404, upstream 502,
// everything else a generic 500.
func translateError(c echo.Context, err error) error {
	var validationErr *entities.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return fail(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return fail(c, http.StatusConflict, "This email is already in use.")
	case errors.Is(err, repositories.ErrDuplicateUsername):
		return fail(c, http.StatusConflict, "This user name is already in use.")
	case errors.Is(err, repositories.ErrUserNotFound):
		return fail(c, http.StatusNotFound, "No account found for that name")
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrTooManyAttempts):
		return fail(c, http.StatusTooManyRequests, "Too many attempts, please try again later")
	case errors.Is(err, infrastructure.ErrInvalidToken):
		return fail(c, http.StatusUnauthorized, "Invalid or expired session")
	case errors.Is(err, catalog.ErrUpstream):
		return fail(c, http.StatusBadGateway, "Can't fetch movies")
	default:
		return fail(c, http.StatusInternalServerError, "An error occurred while processing your request.")
	}
}
