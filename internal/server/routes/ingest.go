package routes

import (
	"encoding/json"
	"net/http"

	"github.com/corporate-radar/backend/internal/jobs"
	"github.com/corporate-radar/backend/internal/queue"
	"github.com/corporate-radar/backend/internal/server/middleware"
	"github.com/corporate-radar/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func CreateIngestJobHandler(c echo.Context) error {
	type createIngestJobParams struct {
		Source string `json:"source" validate:"required"`
	}

	params := new(createIngestJobParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	job, err := jobs.NewStore(app.DBConn).Create(ctx, params.Source)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	msg, err := json.Marshal(queue.IngestJobMsg{
		JobID:  job.ID,
		Source: job.Source,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if err := queue.PublishFIFO(app.Queue, queue.IngestQueue, msg); err != nil {
		logger.Error("Failed to enqueue ingest job", "job_id", job.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusAccepted, job)
}

func GetIngestJobHandler(c echo.Context) error {
	type getIngestJobParams struct {
		JobID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getIngestJobParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	job, err := jobs.NewStore(conn).Get(ctx, params.JobID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	if job == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Job not found"})
	}

	return c.JSON(http.StatusOK, job)
}
