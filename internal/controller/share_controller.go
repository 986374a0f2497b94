package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/pkg/serverutils"
	"contract-renewal-be/internal/service"
)

type IShareController interface {
	RegisterRoutes(r fiber.Router)
	Lookup(ctx *fiber.Ctx) error
	SendEmail(ctx *fiber.Ctx) error
}

type shareController struct {
	eventService service.IEventService
}

func NewShareController(eventService service.IEventService) IShareController {
	return &shareController{
		eventService: eventService,
	}
}

func (c *shareController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/share/v1")
	// Token lookup is intentionally public: the token itself is the
	// capability.
	h.Get(":token", c.Lookup)
	h.Post("email", serverutils.JwtMiddleware, c.SendEmail)
}

func (c *shareController) Lookup(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	if token == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing token"))
	}

	res, err := c.eventService.SharedLookup(ctx.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Event not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Shared event", res))
}

func (c *shareController) SendEmail(ctx *fiber.Ctx) error {
	var req dto.ShareEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if req.From == "" {
		req.From, _ = ctx.Locals("user_email").(string)
	}
	if req.FromName == "" {
		req.FromName, _ = ctx.Locals("user_name").(string)
	}

	if err := c.eventService.SendShareEmail(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Email send failed"))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Share email sent", nil))
}
