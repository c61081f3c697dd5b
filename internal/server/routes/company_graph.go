package routes

import (
	"net/http"

	"github.com/corporate-radar/backend/internal/server/middleware"
	"github.com/corporate-radar/backend/pkg/graph"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func CompanyGraphHandler(c echo.Context) error {
	type companyGraphParams struct {
		CompanyID string `param:"id" validate:"required"`
	}

	params := new(companyGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	store := c.(*middleware.AppContext).App.Graph

	rows, err := store.CompanyEgoRows(ctx, params.CompanyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, graph.Assemble(rows))
}
