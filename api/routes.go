package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"os-scheduler/internal/metrics"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

// NewApp builds the fiber application with the scheduling API under /api/v1.
func NewApp(handler SchedulerHandler, collector *metrics.Collector, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "os-scheduler",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(recover.New())

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	if collector != nil {
		app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))
	}

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/preemptive-priority", handler.PreemptivePriority)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/schedule/:algorithm", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}

// errorHandler maps scheduler and validation errors to 400 and everything
// unexpected to 500.
func errorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var validationErr *requests.ValidationError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   validationErr.Message,
				"details": validationErr.Details,
			})
		case errors.Is(err, schedulers.ErrUnsupportedAlgorithm),
			errors.Is(err, schedulers.ErrInvalidProcess),
			errors.Is(err, schedulers.ErrInvalidTimeQuantum):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		logger.Error().Err(err).Str("path", ctx.Path()).Msg("request failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
}
