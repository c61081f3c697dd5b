package routes

import (
	"net/http"

	"github.com/corporate-radar/backend/internal/server/middleware"
	"github.com/corporate-radar/backend/pkg/status"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func CompanyLiveCheckHandler(c echo.Context) error {
	type liveCheckParams struct {
		CompanyID string `param:"id" validate:"required"`
	}

	type liveCheckResponse struct {
		CompanyID string        `json:"company_id"`
		Name      string        `json:"name"`
		Address   string        `json:"address,omitempty"`
		Status    status.Status `json:"status"`
	}

	params := new(liveCheckParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	details, err := app.Graph.CompanyDetails(ctx, params.CompanyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if details == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Company not found"})
	}

	companyStatus, err := app.Status.CheckStatus(ctx, params.CompanyID, details.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, liveCheckResponse{
		CompanyID: params.CompanyID,
		Name:      details.Name,
		Address:   details.Address,
		Status:    companyStatus,
	})
}
