package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abdodolh14141/Website-Movies/internal/application/command"
	"github.com/abdodolh14141/Website-Movies/internal/application/interfaces"
)

type UserHandler struct {
	users interfaces.UserService
}

func NewUserHandler(users interfaces.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SignUp handles POST /api/user/signIn (the sign-up endpoint; the path is
// part of the public contract).
func (h *UserHandler) SignUp(c echo.Context) error {
	var signUpCommand command.SignUpCommand
	if err := c.Bind(&signUpCommand); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body.")
	}

	if signUpCommand.Name == "" || signUpCommand.Email == "" || signUpCommand.Age == 0 || signUpCommand.Password == "" {
		return fail(c, http.StatusBadRequest, "All fields are required.")
	}

	result, err := h.users.SignUp(c.Request().Context(), &signUpCommand)
	if err != nil {
		return translateError(c, err)
	}

	// Exclude sensitive information from response
	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Sign up successful.",
		User: map[string]string{
			"email": result.Result.Email,
			"name":  result.Result.Name,
		},
	})
}

// Login handles POST /api/user/login. It confirms the credentials only; the
// session token comes from the /api/auth authorize step.
func (h *UserHandler) Login(c echo.Context) error {
	var loginCommand command.LoginCommand
	if err := c.Bind(&loginCommand); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body.")
	}

	if loginCommand.Email == "" || loginCommand.Password == "" {
		return fail(c, http.StatusBadRequest, "Email and password are required")
	}

	if err := h.users.Login(c.Request().Context(), &loginCommand); err != nil {
		return translateError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
	})
}

// CompleteAccount handles POST /api/user/createNewAccount: it sets password
// and age on the record created by a first OAuth sign-in.
func (h *UserHandler) CompleteAccount(c echo.Context) error {
	var completeCommand command.CompleteAccountCommand
	if err := c.Bind(&completeCommand); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body.")
	}

	if completeCommand.Name == "" || completeCommand.Password == "" {
		return fail(c, http.StatusBadRequest, "Name and password are required")
	}

	if err := h.users.CompleteAccount(c.Request().Context(), &completeCommand); err != nil {
		return translateError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Success Create User Password And Age",
	})
}

// GoogleSignIn handles POST /api/user/googleSignIn, the OAuth bridge fed by
// a verified provider profile.
func (h *UserHandler) GoogleSignIn(c echo.Context) error {
	var googleCommand command.GoogleSignInCommand
	if err := c.Bind(&googleCommand); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body.")
	}

	if googleCommand.Email == "" || googleCommand.Name == "" {
		return fail(c, http.StatusBadRequest, "Email and name are required")
	}

	result, err := h.users.GoogleSignIn(c.Request().Context(), &googleCommand)
	if err != nil {
		return translateError(c, err)
	}

	if result.Created {
		return c.JSON(http.StatusOK, Response{
			Success: true,
			Message: "Success Create New User By OAuth",
		})
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		User:    result.Result,
	})
}
