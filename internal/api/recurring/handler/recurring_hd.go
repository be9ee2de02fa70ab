package recurringHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/recurring"
	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
	"FintrackGolang/pkg/handlerUtil"
	jwtPkg "FintrackGolang/pkg/jwt"
	"FintrackGolang/pkg/log"
)

func makeOverrideResponse(override entity.RecurringOverride) recurring.OverrideResponse {
	return recurring.OverrideResponse{
		ID:                      override.ID,
		MerchantName:            override.MerchantName,
		OriginalMerchant:        override.OriginalMerchant,
		RecurringStatus:         override.RecurringStatus,
		ApplyToAll:              override.ApplyToAll,
		Reason:                  override.Reason,
		TriggerTransactionID:    override.TriggerTransactionID,
		AppliedCount:            override.AppliedCount,
		RelatedTransactionCount: override.RelatedTransactionCount,
		CreatedAt:               override.CreatedAt.Format(time.RFC3339),
	}
}

func (h *RecurringHandler) CreateOverride(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create recurring override request")

	var req recurring.CreateOverrideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	override, err := h.recurringService.CreateOverride(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_override")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeOverrideResponse(override))
	}
}

func (h *RecurringHandler) GetOverrides(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	overrides, err := h.recurringService.GetOverridesByUserID(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_overrides")
	}

	responses := make([]recurring.OverrideResponse, 0, len(overrides))
	for _, override := range overrides {
		responses = append(responses, makeOverrideResponse(override))
	}

	response := recurring.OverrideListResponse{
		Overrides: responses,
		Total:     len(responses),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *RecurringHandler) GetMerchantFrequency(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	merchant := ctx.Query("merchant")
	if merchant == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("merchant query parameter is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	frequency, err := h.recurringService.GetMerchantFrequency(c, userData.ID, merchant)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_merchant_frequency")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, frequency)
	}
}
