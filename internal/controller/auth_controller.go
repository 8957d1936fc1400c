package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"carepal-be/internal/dto"
	"carepal-be/internal/service"
)

type AuthController struct {
	authService service.IAuthService
	validate    *validator.Validate
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
		validate:    validator.New(),
	}
}

func (c *AuthController) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/login", c.Login)
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
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

	res, err := c.authService.Login(ctx.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusUnauthorized,
				"message": "NIK atau kata sandi salah",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusInternalServerError,
			"message": "Internal server error",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": "Login successful",
		"data":    res,
	})
}
