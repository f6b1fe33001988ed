// Package api exposes the schedulers over HTTP/JSON.
package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/vinhtrinh326/schedsim/internal/config"
	"github.com/vinhtrinh326/schedsim/internal/scheduler"
)

type ScheduleRequest struct {
	Processes      []scheduler.Process `json:"processes"`
	TimeQuantum    int64               `json:"time_quantum"`
	PriorityLevels int                 `json:"priority_levels"`
}

type ScheduleResponse struct {
	*scheduler.Result
	Makespan    int64   `json:"makespan"`
	IdleTime    int64   `json:"idle_time"`
	Utilization float64 `json:"utilization"`
	Throughput  float64 `json:"throughput"`
}

func newScheduleResponse(r *scheduler.Result) ScheduleResponse {
	return ScheduleResponse{
		Result:      r,
		Makespan:    r.Makespan(),
		IdleTime:    r.IdleTime(),
		Utilization: r.Utilization(),
		Throughput:  r.Throughput(),
	}
}

type SchedulerHandler struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandler(config *config.SchedulerConfig) *SchedulerHandler {
	return &SchedulerHandler{config: config}
}

// params fills zero request knobs from the config.
func (h *SchedulerHandler) params(req *ScheduleRequest) scheduler.Params {
	p := h.config.Params()
	if req.TimeQuantum != 0 {
		p.TimeQuantum = req.TimeQuantum
	}
	if req.PriorityLevels != 0 {
		p.PriorityLevels = req.PriorityLevels
	}
	return p
}

// withinBudget rejects requests whose schedule could run past MaxTicks.
func (h *SchedulerHandler) withinBudget(processes []scheduler.Process) error {
	horizon, err := scheduler.Horizon(processes)
	if err != nil {
		return err
	}
	if h.config.MaxTicks > 0 && horizon > h.config.MaxTicks {
		return fmt.Errorf("%w: schedule may span %d ticks, limit is %d",
			scheduler.ErrInvalidParameter, horizon, h.config.MaxTicks)
	}
	return nil
}

func (h *SchedulerHandler) Schedule(ctx *fiber.Ctx) error {
	policy, err := scheduler.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		return writeError(ctx, err)
	}
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	if err := h.withinBudget(req.Processes); err != nil {
		return writeError(ctx, err)
	}
	r, err := scheduler.Run(policy, req.Processes, h.params(&req))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(newScheduleResponse(r))
}

func (h *SchedulerHandler) Compare(ctx *fiber.Ctx) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	if err := h.withinBudget(req.Processes); err != nil {
		return writeError(ctx, err)
	}
	comparisons, err := scheduler.Compare(req.Processes, h.params(&req))
	if err != nil {
		return writeError(ctx, err)
	}
	out := make([]ScheduleResponse, len(comparisons))
	for i, c := range comparisons {
		out[i] = newScheduleResponse(c.Result)
	}
	return ctx.JSON(out)
}

func (h *SchedulerHandler) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, scheduler.ErrUnknownPolicy):
		status = fiber.StatusNotFound
	case errors.Is(err, scheduler.ErrEmptyInput),
		errors.Is(err, scheduler.ErrInvalidProcess),
		errors.Is(err, scheduler.ErrInvalidParameter):
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
