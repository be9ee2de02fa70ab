package recurringService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/recurring"
	recurringRepository "FintrackGolang/internal/api/recurring/repository"
	transactionRepository "FintrackGolang/internal/api/transaction/repository"
	"FintrackGolang/internal/entity"
	redisPkg "FintrackGolang/pkg/redis"
	"FintrackGolang/pkg/utils"
)

type IRecurringService interface {
	CreateOverride(ctx context.Context, req recurring.CreateOverrideRequest) (entity.RecurringOverride, error)
	GetOverridesByUserID(ctx context.Context, userID string) ([]entity.RecurringOverride, error)
	GetMerchantFrequency(ctx context.Context, userID string, merchant string) (recurring.FrequencyResponse, error)
}

type recurringService struct {
	log                   *logrus.Logger
	recurringRepository   recurringRepository.Repository
	transactionRepository transactionRepository.Repository
	redis                 redisPkg.IRedis
	utils                 utils.IUtils
}

func NewRecurringService(
	log *logrus.Logger,
	rr recurringRepository.Repository,
	tr transactionRepository.Repository,
	redis redisPkg.IRedis,
	utils utils.IUtils,
) IRecurringService {
	return &recurringService{
		log:                   log,
		recurringRepository:   rr,
		transactionRepository: tr,
		redis:                 redis,
		utils:                 utils,
	}
}
