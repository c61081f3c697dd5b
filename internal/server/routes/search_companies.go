package routes

import (
	"net/http"

	"github.com/corporate-radar/backend/internal/server/middleware"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func SearchCompaniesHandler(c echo.Context) error {
	type searchCompaniesParams struct {
		Query string `query:"q" validate:"required"`
		Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
	}

	params := new(searchCompaniesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	ctx := c.Request().Context()
	graph := c.(*middleware.AppContext).App.Graph

	hits, err := graph.SearchCompanies(ctx, params.Query, params.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, hits)
}
