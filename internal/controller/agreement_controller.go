package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/pkg/serverutils"
	"contract-renewal-be/internal/service"
)

type IAgreementController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type agreementController struct {
	uploadService    service.IUploadService
	agreementService service.IAgreementService
}

func NewAgreementController(uploadService service.IUploadService, agreementService service.IAgreementService) IAgreementController {
	return &agreementController{
		uploadService:    uploadService,
		agreementService: agreementService,
	}
}

func (c *agreementController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agreement/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("upload", c.Upload)
	h.Get("", c.List)
}

func (c *agreementController) Upload(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}
	ownerEmail, _ := ctx.Locals("user_email").(string)

	var req dto.UploadAgreementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.uploadService.ProcessUpload(ctx.Context(), userId, ownerEmail, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnreadablePDF) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(
				serverutils.ErrorResponse(422, "Sorry, this PDF may be corrupted or unreadable. Please try again."))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(
			serverutils.ErrorResponse(500, "Sorry, something went wrong while processing this file. Please try again."))
	}

	return ctx.JSON(serverutils.SuccessResponse("Agreement processed", res))
}

func (c *agreementController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user"))
	}

	res, err := c.agreementService.List(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("User agreements", res))
}
