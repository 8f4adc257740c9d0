package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ScheduleByName(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ScheduleByName(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.schedule(ctx, algorithm)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, opts, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx)
	}

	results, err := schedulers.RunAll(processes, opts)
	if err != nil {
		return s.fail(ctx, err)
	}

	runID := uuid.NewString()
	s.logger.Info("simulated all algorithms", "run_id", runID, "processes", len(processes), "time_quantum", opts.TimeQuantum)
	return ctx.JSON(responses.FromResults(runID, results))
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	list := make([]fiber.Map, 0, len(schedulers.Algorithms))
	for _, a := range schedulers.Algorithms {
		list = append(list, fiber.Map{
			"name":       string(a),
			"title":      a.Title(),
			"preemptive": a.Preemptive(),
		})
	}
	return ctx.JSON(fiber.Map{"algorithms": list})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	processes, opts, err := s.parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx)
	}

	result, err := schedulers.Run(algorithm, processes, opts)
	if err != nil {
		return s.fail(ctx, err)
	}

	runID := uuid.NewString()
	s.logger.Info("simulated", "run_id", runID, "algorithm", string(algorithm), "processes", len(processes))
	return ctx.JSON(responses.FromResult(runID, result))
}

// parseRequest decodes the body; a missing time quantum falls back to the configured one.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]core.Process, schedulers.Options, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("invalid request body", "error", err)
		return nil, schedulers.Options{}, err
	}

	opts := schedulers.Options{TimeQuantum: request.TimeQuantum}
	if opts.TimeQuantum == 0 && s.config != nil {
		opts.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return request.ToProcesses(), opts, nil
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "can not process request"
	switch {
	case errors.Is(err, core.ErrInvalidProcess), errors.Is(err, core.ErrInvalidQuantum):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusNotFound
		message = err.Error()
	default:
		s.logger.Error("simulation failed", "error", err)
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message})
}
