package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
)

func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "os-scheduler",
		DisableStartupMessage: true,
	})
	RegisterRoutes(app, NewSchedulerHandlerImpl(cfg, logger))
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	app.Get("/health", handler.Health)

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fifo", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/schedule/:algorithm", handler.ScheduleByName)
	}
}
