package server

import (
	"github.com/corporate-radar/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Company routes
	apiRoutes.GET("/companies/search", routes.SearchCompaniesHandler)
	apiRoutes.GET("/companies/:id/live-check", routes.CompanyLiveCheckHandler)
	apiRoutes.GET("/companies/:id/network", routes.CompanyNetworkHandler)
	apiRoutes.GET("/companies/:id/graph", routes.CompanyGraphHandler)
	apiRoutes.GET("/companies/:id/hr-ai-mock", routes.CompanyHrAiMockHandler)

	// Ingestion routes
	apiRoutes.POST("/ingest", routes.CreateIngestJobHandler)
	apiRoutes.GET("/ingest/:id", routes.GetIngestJobHandler)
}
