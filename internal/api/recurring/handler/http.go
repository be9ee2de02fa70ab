package recurringHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	recurringService "FintrackGolang/internal/api/recurring/service"
	"FintrackGolang/internal/middleware"
)

type RecurringHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	recurringService recurringService.IRecurringService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	recurringService recurringService.IRecurringService,
) *RecurringHandler {
	return &RecurringHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		recurringService: recurringService,
	}
}

func (h *RecurringHandler) Start(srv fiber.Router) {
	srv.Post("/user/recurring-overrides", h.middleware.NewTokenMiddleware, h.CreateOverride)
	srv.Get("/user/recurring-overrides", h.middleware.NewTokenMiddleware, h.GetOverrides)

	srv.Get("/recurring/frequency", h.middleware.NewTokenMiddleware, h.GetMerchantFrequency)
}
