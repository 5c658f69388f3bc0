package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"os-scheduler/config"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	engine *schedulers.Engine
	logger zerolog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, engine *schedulers.Engine, logger zerolog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, engine: engine, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PreemptivePriority)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

// Schedule serves /schedule/:algorithm for any supported selector or alias.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return err
	}
	return s.schedule(ctx, algorithm)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}

	outcomes, err := s.engine.RunAll(request.Processes(), request.TimeQuantum)
	if err != nil {
		return err
	}

	response := make(map[string]responses.ScheduleResponse, len(outcomes))
	for algorithm, outcome := range outcomes {
		response[string(algorithm)] = schedulers.GenerateResponse(algorithm, outcome)
	}
	s.logger.Info().Int("processes", len(request.Jobs)).Int("algorithms", len(response)).Msg("compared all algorithms")
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	type algorithmInfo struct {
		Name         string `json:"name"`
		Preemptive   bool   `json:"preemptive"`
		UsesPriority bool   `json:"uses_priority"`
	}
	list := make([]algorithmInfo, 0, len(schedulers.Algorithms))
	for _, a := range schedulers.Algorithms {
		list = append(list, algorithmInfo{Name: string(a), Preemptive: a.Preemptive(), UsesPriority: a.UsesPriority()})
	}
	return ctx.JSON(fiber.Map{
		"algorithms":               list,
		"round_robin_time_quantum": s.config.RoundRobinTimeQuantum,
		"mlfq_levels_time_quantum": s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}

	outcome, err := s.engine.Run(algorithm, request.Processes(), request.TimeQuantum)
	if err != nil {
		return err
	}

	response := schedulers.GenerateResponse(algorithm, outcome)
	s.logger.Info().
		Str("algorithm", string(algorithm)).
		Int("processes", len(request.Jobs)).
		Float64("average_waiting_time", response.AverageWaitingTime).
		Msg("scheduled processes")
	return ctx.JSON(response)
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return &request, nil
}
