package transactionHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	transactionService "FintrackGolang/internal/api/transaction/service"
	"FintrackGolang/internal/middleware"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	srv.Get("/transactions", h.middleware.NewTokenMiddleware, h.GetTransactions)
	srv.Patch("/transactions/:id", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	srv.Get("/accounts", h.middleware.NewTokenMiddleware, h.GetAccounts)
	srv.Get("/categories", h.middleware.NewTokenMiddleware, h.GetCategories)
}
