package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/talentpulse/eval360-api/internal/dto"
	"github.com/talentpulse/eval360-api/internal/middleware"
	"github.com/talentpulse/eval360-api/internal/models"
	"github.com/talentpulse/eval360-api/internal/service"
	"github.com/talentpulse/eval360-api/internal/utils"
)

// EmployeeHandler wires employee catalog HTTP routes.
type EmployeeHandler struct {
	service service.EmployeeService
	logger  zerolog.Logger
}

// NewEmployeeHandler constructs the handler.
func NewEmployeeHandler(service service.EmployeeService, logger zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		logger:  logger.With().Str("component", "employee_handler").Logger(),
	}
}

// Register attaches employee endpoints to the router group.
func (h *EmployeeHandler) Register(router fiber.Router) {
	manage := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", manage, h.create)
	router.Put("/:id", manage, h.update)
}

func (h *EmployeeHandler) list(c *fiber.Ctx) error {
	employees, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "employees retrieved", employees)
}

func (h *EmployeeHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "employee retrieved", employee)
}

func (h *EmployeeHandler) create(c *fiber.Ctx) error {
	var payload dto.EmployeeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	employee, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "employee created", employee)
}

func (h *EmployeeHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.EmployeeUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	employee, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "employee updated", employee)
}

func (h *EmployeeHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "employee not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *EmployeeHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
