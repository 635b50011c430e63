package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abdodolh14141/Website-Movies/internal/catalog"
)

type MovieHandler struct {
	catalog *catalog.Client
	rotator *catalog.Rotator
}

func NewMovieHandler(catalogClient *catalog.Client, rotator *catalog.Rotator) *MovieHandler {
	return &MovieHandler{
		catalog: catalogClient,
		rotator: rotator,
	}
}

// List handles GET /api/movies?page=&limit=, proxying the catalog page
// through unchanged.
func (h *MovieHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.catalog.ListMovies(c.Request().Context(), page, limit)
	if err != nil {
		return translateError(c, err)
	}

	// The featured strip rotates through the last window anyone fetched.
	h.rotator.Update(list.Movies)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    list,
	})
}

// Detail handles GET /api/movies/:id.
func (h *MovieHandler) Detail(c echo.Context) error {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID < 1 {
		return fail(c, http.StatusBadRequest, "Invalid movie id")
	}

	movie, err := h.catalog.MovieDetails(c.Request().Context(), movieID)
	if err != nil {
		return translateError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    movie,
	})
}
