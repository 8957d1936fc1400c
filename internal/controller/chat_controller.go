package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"carepal-be/internal/dto"
	"carepal-be/internal/pkg/serverutils"
	"carepal-be/internal/service"
)

type ChatController struct {
	chatService           service.IChatService
	recommendationService service.IRecommendationService
	validate              *validator.Validate
}

func NewChatController(chatService service.IChatService, recommendationService service.IRecommendationService) *ChatController {
	return &ChatController{
		chatService:           chatService,
		recommendationService: recommendationService,
		validate:              validator.New(),
	}
}

func (c *ChatController) RegisterRoutes(router fiber.Router) {
	chat := router.Group("/chat", serverutils.JwtMiddleware)
	chat.Post("/session", c.CreateSession)
	chat.Get("/sessions", c.GetSessions)
	chat.Get("/history/:id", c.GetHistory)
	chat.Post("/", c.SendChat)

	router.Get("/recommendations", serverutils.JwtMiddleware, c.GetRecommendations)
}

func customerIdFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("customer_id").(string)
	return uuid.Parse(raw)
}

func (c *ChatController) CreateSession(ctx *fiber.Ctx) error {
	customerId, err := customerIdFromLocals(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	res, err := c.chatService.CreateSession(ctx.UserContext(), customerId)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusCreated,
		"message": "Session created",
		"data":    res,
	})
}

func (c *ChatController) GetSessions(ctx *fiber.Ctx) error {
	customerId, err := customerIdFromLocals(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	res, err := c.chatService.GetSessions(ctx.UserContext(), customerId)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": "Sessions retrieved",
		"data":    res,
	})
}

func (c *ChatController) GetHistory(ctx *fiber.Ctx) error {
	customerId, err := customerIdFromLocals(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusBadRequest,
			"message": "Invalid session id",
		})
	}

	res, err := c.chatService.GetHistory(ctx.UserContext(), customerId, sessionId)
	if err != nil {
		return sessionError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": "History retrieved",
		"data":    res,
	})
}

func (c *ChatController) SendChat(ctx *fiber.Ctx) error {
	customerId, err := customerIdFromLocals(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusBadRequest,
			"message": "Invalid request body",
		})
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusBadRequest,
			"message": err.Error(),
		})
	}

	res, err := c.chatService.SendChat(ctx.UserContext(), customerId, req)
	if err != nil {
		return sessionError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": "Chat processed",
		"data":    res,
	})
}

func (c *ChatController) GetRecommendations(ctx *fiber.Ctx) error {
	customerId, err := customerIdFromLocals(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var sessionId *uuid.UUID
	if raw := ctx.Query("session_id"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			sessionId = &parsed
		}
	}

	res, err := c.recommendationService.GetRecommendations(ctx.UserContext(), customerId, sessionId)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": "Recommendations retrieved",
		"data":    res,
	})
}

func sessionError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusNotFound,
			"message": "Chat session not found",
		})
	case errors.Is(err, service.ErrSessionForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusForbidden,
			"message": "Chat session belongs to another customer",
		})
	default:
		return internalError(ctx)
	}
}

func unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"code":    fiber.StatusUnauthorized,
		"message": "Unauthorized",
	})
}

func internalError(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"code":    fiber.StatusInternalServerError,
		"message": "Internal server error",
	})
}
