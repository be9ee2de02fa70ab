package automationHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	automationService "FintrackGolang/internal/api/automation/service"
	"FintrackGolang/internal/middleware"
)

type AutomationHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	automationService automationService.IAutomationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	automationService automationService.IAutomationService,
) *AutomationHandler {
	return &AutomationHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		automationService: automationService,
	}
}

func (h *AutomationHandler) Start(srv fiber.Router) {
	srv.Post("/automation-rules", h.middleware.NewTokenMiddleware, h.CreateRule)
	srv.Get("/automation-rules", h.middleware.NewTokenMiddleware, h.GetRules)
	srv.Post("/automation-rules/preview", h.middleware.NewTokenMiddleware, h.PreviewRule)
	srv.Patch("/automation-rules/:id", h.middleware.NewTokenMiddleware, h.UpdateRule)
	srv.Delete("/automation-rules/:id", h.middleware.NewTokenMiddleware, h.DeleteRule)
}
