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

// AnswerKeyHandler wires answer key HTTP routes.
type AnswerKeyHandler struct {
	service service.AnswerKeyService
	logger  zerolog.Logger
}

// NewAnswerKeyHandler constructs the handler.
func NewAnswerKeyHandler(service service.AnswerKeyService, logger zerolog.Logger) *AnswerKeyHandler {
	return &AnswerKeyHandler{
		service: service,
		logger:  logger.With().Str("component", "answer_key_handler").Logger(),
	}
}

// Register attaches answer key endpoints to the router group.
func (h *AnswerKeyHandler) Register(router fiber.Router) {
	manage := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	router.Get("/:id", h.get)
	router.Post("", manage, h.create)
	router.Put("/:id", manage, h.update)
}

func (h *AnswerKeyHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	key, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "answer key retrieved", key)
}

func (h *AnswerKeyHandler) create(c *fiber.Ctx) error {
	var payload dto.AnswerKeyCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	key, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "answer key created", key)
}

func (h *AnswerKeyHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.AnswerKeyUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	key, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "answer key updated", key)
}

func (h *AnswerKeyHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAnswerKeyNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "answer key not found")
	case errors.Is(err, service.ErrQuestionNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "question not found")
	case errors.Is(err, service.ErrAnswerKeyExists):
		return utils.SendError(c, fiber.StatusConflict, "answer key already exists for question")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *AnswerKeyHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
