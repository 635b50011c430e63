package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Register wires every route and the shared middleware onto the echo
// instance.
func Register(e *echo.Echo, users *UserHandler, auth *AuthHandler, movies *MovieHandler, pages *PageHandler) {
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// The account endpoints get a stricter per-IP limit than the rest.
	authLimit := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(20)))

	userGroup := e.Group("/api/user", authLimit)
	userGroup.POST("/signIn", users.SignUp)
	userGroup.POST("/login", users.Login)
	userGroup.POST("/createNewAccount", users.CompleteAccount)
	userGroup.POST("/googleSignIn", users.GoogleSignIn)

	authGroup := e.Group("/api/auth", authLimit)
	authGroup.POST("/login", auth.Login)
	authGroup.GET("/session", auth.Session)
	authGroup.POST("/logout", auth.Logout)
	authGroup.GET("/google/login", auth.GoogleLogin)
	authGroup.GET("/google/callback", auth.GoogleCallback)

	e.GET("/api/movies", movies.List)
	e.GET("/api/movies/:id", movies.Detail)

	e.GET("/", pages.Home)
	e.GET("/movies", pages.Movies)
	e.GET("/movies/:id", pages.Movie)
	e.GET("/login", pages.Login)
	e.GET("/signIn", pages.SignUp)
	e.GET("/completeAccount", pages.CompleteAccount)
}
