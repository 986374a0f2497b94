package controller

import (
	"github.com/gofiber/fiber/v2"

	"contract-renewal-be/internal/pkg/serverutils"
	"contract-renewal-be/internal/service"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	AutoRenew(ctx *fiber.Ctx) error
	Reminders(ctx *fiber.Ctx) error
}

type jobController struct {
	renewalService  service.IRenewalService
	reminderService service.IReminderService
}

func NewJobController(renewalService service.IRenewalService, reminderService service.IReminderService) IJobController {
	return &jobController{
		renewalService:  renewalService,
		reminderService: reminderService,
	}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/job/v1")
	h.Use(serverutils.CronMiddleware)
	// Hosted cron triggers issue plain GETs.
	h.Get("auto-renew", c.AutoRenew)
	h.Get("reminders", c.Reminders)
}

func (c *jobController) AutoRenew(ctx *fiber.Ctx) error {
	res, err := c.renewalService.Sweep(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Auto-renew check completed", res))
}

func (c *jobController) Reminders(ctx *fiber.Ctx) error {
	res, err := c.reminderService.Run(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Reminder run completed", res))
}
