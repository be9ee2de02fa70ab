package automationHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/automation"
	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
	"FintrackGolang/pkg/handlerUtil"
	jwtPkg "FintrackGolang/pkg/jwt"
	"FintrackGolang/pkg/log"
)

func makeRuleResponse(rule entity.AutomationRule) automation.RuleResponse {
	return automation.RuleResponse{
		ID:                       rule.ID,
		Name:                     rule.Name,
		IsActive:                 rule.IsActive,
		MerchantPattern:          rule.MerchantPattern,
		DescriptionPattern:       rule.DescriptionPattern,
		AmountMin:                rule.AmountMin,
		AmountMax:                rule.AmountMax,
		AccountIDs:               rule.AccountIDs,
		SetCategoryID:            rule.SetCategoryID,
		RenameTo:                 rule.RenameTo,
		AssignToBillID:           rule.AssignToBillID,
		IgnoreTransaction:        rule.IgnoreTransaction,
		MarkTaxDeductible:        rule.MarkTaxDeductible,
		CreatedFromTransactionID: rule.CreatedFromTransactionID,
		CreatedAt:                rule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                rule.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *AutomationHandler) CreateRule(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create rule request")

	var req automation.CreateRuleRequest
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

	rule, err := h.automationService.CreateRule(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_rule")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeRuleResponse(rule))
	}
}

func (h *AutomationHandler) GetRules(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	rules, err := h.automationService.GetRulesByUserID(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_rules")
	}

	responses := make([]automation.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, makeRuleResponse(rule))
	}

	response := automation.RuleListResponse{
		Rules: responses,
		Total: len(responses),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *AutomationHandler) UpdateRule(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update rule request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("rule ID is required"), ctx.Path())
	}

	var req automation.UpdateRuleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	rule, err := h.automationService.UpdateRule(c, id, userData.ID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_rule")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeRuleResponse(rule))
	}
}

func (h *AutomationHandler) DeleteRule(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete rule request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("rule ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.automationService.DeleteRule(c, id, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_rule")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Automation rule deleted successfully",
		})
	}
}

func (h *AutomationHandler) PreviewRule(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req automation.PreviewRequest
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

	preview, err := h.automationService.PreviewRule(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "preview_rule")
	}

	matches := make([]automation.PreviewTransaction, 0, len(preview.Matches))
	for _, tx := range preview.Matches {
		matches = append(matches, automation.PreviewTransaction{
			ID:          tx.ID,
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Merchant:    tx.Merchant,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Category:    tx.Category,
			AccountID:   tx.AccountID,
		})
	}

	response := automation.PreviewResponse{
		Matches:    matches,
		TotalCount: preview.TotalCount,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
