package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abdodolh14141/Website-Movies/internal/catalog"
)

const (
	homePageNumber = 2
	homePageLimit  = 50
	featuredCount  = 5
)

// PageHandler serves the rendered pages. Pages go through the same catalog
// client as the API; an upstream failure renders a notice with a retry link
// instead of an error page.
type PageHandler struct {
	catalog *catalog.Client
	rotator *catalog.Rotator
}

func NewPageHandler(catalogClient *catalog.Client, rotator *catalog.Rotator) *PageHandler {
	return &PageHandler{
		catalog: catalogClient,
		rotator: rotator,
	}
}

type moviesPage struct {
	Movies []catalog.Movie
	Page   int
	Prev   int
	Next   int
	Error  string
}

type moviePage struct {
	Movie *catalog.Movie
	ID    int
	Error string
}

func (h *PageHandler) Home(c echo.Context) error {
	data := moviesPage{}

	list, err := h.catalog.ListMovies(c.Request().Context(), homePageNumber, homePageLimit)
	if err != nil {
		data.Error = "Can't fetch movies"
	} else {
		h.rotator.Update(list.Movies)
		data.Movies = h.rotator.Featured(featuredCount)
	}

	return c.Render(http.StatusOK, "home.html", data)
}

func (h *PageHandler) Movies(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	data := moviesPage{Page: page, Prev: page - 1, Next: page + 1}

	list, err := h.catalog.ListMovies(c.Request().Context(), page, 20)
	if err != nil {
		data.Error = "Can't fetch movies"
	} else {
		data.Movies = list.Movies
	}

	return c.Render(http.StatusOK, "movies.html", data)
}

func (h *PageHandler) Movie(c echo.Context) error {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID < 1 {
		return c.Render(http.StatusOK, "movie.html", moviePage{Error: "Invalid movie id"})
	}

	data := moviePage{ID: movieID}

	movie, err := h.catalog.MovieDetails(c.Request().Context(), movieID)
	if err != nil {
		data.Error = "Failed to fetch movie data"
	} else {
		data.Movie = movie
	}

	return c.Render(http.StatusOK, "movie.html", data)
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

func (h *PageHandler) SignUp(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", nil)
}

func (h *PageHandler) CompleteAccount(c echo.Context) error {
	return c.Render(http.StatusOK, "complete.html", nil)
}
