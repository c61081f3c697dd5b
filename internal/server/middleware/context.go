package middleware

import (
	"github.com/corporate-radar/backend/pkg/status"
	"github.com/corporate-radar/backend/pkg/store/base"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"
)

type App struct {
	DBConn *pgxpool.Pool
	Queue  *amqp091.Channel
	Graph  base.GraphStore
	Status status.Provider
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(
	db *pgxpool.Pool,
	queue *amqp091.Channel,
	graph base.GraphStore,
	statusProvider status.Provider,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				DBConn: db,
				Queue:  queue,
				Graph:  graph,
				Status: statusProvider,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
