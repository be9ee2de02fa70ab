package transactionService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/transaction"
	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
)

func (s *transactionService) GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactions, err := repo.Transaction.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get transactions")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	tx, err := repo.Transaction.GetTransactionByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Warn("Transaction lookup failed before update")
		return entity.Transaction{}, err
	}

	if tx.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Transaction does not belong to user")
		return entity.Transaction{}, transaction.ErrTransactionNotOwned
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.CategoryID != nil {
		tx.CategoryID = *req.CategoryID
	}
	if req.BillID != nil {
		tx.BillID = *req.BillID
	}
	if req.IsIgnored != nil {
		tx.IsIgnored = *req.IsIgnored
	}
	if req.IsTaxDeductible != nil {
		tx.IsTaxDeductible = *req.IsTaxDeductible
	}

	if err := repo.Transaction.UpdateTransaction(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	return tx, nil
}

func (s *transactionService) GetAccountsByUserID(ctx context.Context, userID string) ([]entity.Account, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Account.GetAccountsByUserID(ctx, userID)
}

func (s *transactionService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Account.GetCategories(ctx)
}
