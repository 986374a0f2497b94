package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/pkg/serverutils"
	"contract-renewal-be/internal/service"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	MarkDone(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
	Share(ctx *fiber.Ctx) error
	Renew(ctx *fiber.Ctx) error
	CancelAuto(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type eventController struct {
	eventService   service.IEventService
	renewalService service.IRenewalService
}

func NewEventController(eventService service.IEventService, renewalService service.IRenewalService) IEventController {
	return &eventController{
		eventService:   eventService,
		renewalService: renewalService,
	}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/event/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post(":id/done", c.MarkDone)
	h.Post(":id/assign", c.Assign)
	h.Post(":id/share", c.Share)
	h.Post(":id/renew", c.Renew)
	h.Post(":id/cancel-auto", c.CancelAuto)
	h.Delete(":id", c.Delete)
}

func (c *eventController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.eventService.List(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("User events", res))
}

func (c *eventController) MarkDone(ctx *fiber.Ctx) error {
	userId, id, errRes := c.authAndId(ctx)
	if errRes != nil {
		return errRes
	}

	var req dto.MarkDoneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	res, err := c.eventService.MarkDone(ctx.Context(), userId, &req)
	if err != nil {
		return c.serviceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Event updated", res))
}

func (c *eventController) Assign(ctx *fiber.Ctx) error {
	userId, id, errRes := c.authAndId(ctx)
	if errRes != nil {
		return errRes
	}

	var req dto.AssignEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.eventService.Assign(ctx.Context(), userId, &req)
	if err != nil {
		return c.serviceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Event assigned", res))
}

func (c *eventController) Share(ctx *fiber.Ctx) error {
	userId, id, errRes := c.authAndId(ctx)
	if errRes != nil {
		return errRes
	}

	var req dto.ShareEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if req.SharedBy == "" {
		req.SharedBy, _ = ctx.Locals("user_email").(string)
	}

	res, err := c.eventService.Share(ctx.Context(), userId, &req)
	if err != nil {
		return c.serviceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Share link generated", res))
}

func (c *eventController) Renew(ctx *fiber.Ctx) error {
	userId, id, errRes := c.authAndId(ctx)
	if errRes != nil {
		return errRes
	}

	res, err := c.renewalService.Renew(ctx.Context(), userId, id)
	if err != nil {
		return c.serviceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Event renewed", res))
}

func (c *eventController) CancelAuto(ctx *fiber.Ctx) error {
	userId, id, errRes := c.authAndId(ctx)
	if errRes != nil {
		return errRes
	}

	res, err := c.renewalService.CancelAuto(ctx.Context(), userId, id)
	if err != nil {
		return c.serviceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Auto-renew canceled", res))
}

func (c *eventController) Delete(ctx *fiber.Ctx) error {
	userId, id, errRes := c.authAndId(ctx)
	if errRes != nil {
		return errRes
	}

	if err := c.eventService.Delete(ctx.Context(), userId, id); err != nil {
		return c.serviceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Event deleted", nil))
}

func (c *eventController) authAndId(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}
	return userId, id, nil
}

func (c *eventController) serviceError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrEventNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Event not found"))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
