package routes

import (
	"net/http"

	"github.com/corporate-radar/backend/internal/server/middleware"
	"github.com/corporate-radar/backend/pkg/store/base"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func CompanyNetworkHandler(c echo.Context) error {
	type networkParams struct {
		CompanyID string `param:"id" validate:"required"`
	}

	type networkResponse struct {
		CompanyID string         `json:"company_id"`
		Officers  []base.Officer `json:"officers"`
	}

	params := new(networkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	graph := c.(*middleware.AppContext).App.Graph

	officers, err := graph.CompanyNetwork(ctx, params.CompanyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, networkResponse{
		CompanyID: params.CompanyID,
		Officers:  officers,
	})
}
