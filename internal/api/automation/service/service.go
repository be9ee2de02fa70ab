package automationService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/automation"
	automationRepository "FintrackGolang/internal/api/automation/repository"
	transactionRepository "FintrackGolang/internal/api/transaction/repository"
	"FintrackGolang/internal/entity"
	"FintrackGolang/pkg/ruleengine"
	"FintrackGolang/pkg/utils"
)

type IAutomationService interface {
	CreateRule(ctx context.Context, req automation.CreateRuleRequest) (entity.AutomationRule, error)
	GetRulesByUserID(ctx context.Context, userID string) ([]entity.AutomationRule, error)
	UpdateRule(ctx context.Context, id string, userID string, req automation.UpdateRuleRequest) (entity.AutomationRule, error)
	DeleteRule(ctx context.Context, id string, userID string) error
	PreviewRule(ctx context.Context, req automation.PreviewRequest) (ruleengine.Preview, error)
}

type automationService struct {
	log                   *logrus.Logger
	ruleRepository        automationRepository.Repository
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
}

func NewAutomationService(
	log *logrus.Logger,
	rr automationRepository.Repository,
	tr transactionRepository.Repository,
	utils utils.IUtils,
) IAutomationService {
	return &automationService{
		log:                   log,
		ruleRepository:        rr,
		transactionRepository: tr,
		utils:                 utils,
	}
}
