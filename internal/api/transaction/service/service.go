package transactionService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/transaction"
	transactionRepository "FintrackGolang/internal/api/transaction/repository"
	"FintrackGolang/internal/entity"
)

type ITransactionService interface {
	GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (entity.Transaction, error)
	GetAccountsByUserID(ctx context.Context, userID string) ([]entity.Account, error)
	GetCategories(ctx context.Context) ([]entity.Category, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
	}
}
