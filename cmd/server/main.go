package main

import (
	"github.com/corporate-radar/backend/internal/server"
	"github.com/corporate-radar/backend/internal/util"
	"github.com/corporate-radar/backend/pkg/logger"
	"github.com/corporate-radar/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
