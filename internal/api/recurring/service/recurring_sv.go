package recurringService

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/recurring"
	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
	redisPkg "FintrackGolang/pkg/redis"
	"FintrackGolang/pkg/ruleengine"
)

const frequencyCacheTTL = time.Hour

const (
	frequencySourceOverride  = "override"
	frequencySourceHeuristic = "heuristic"
)

func (s *recurringService) CreateOverride(ctx context.Context, req recurring.CreateOverrideRequest) (entity.RecurringOverride, error) {
	requestID := contextPkg.GetRequestID(ctx)

	merchant := strings.TrimSpace(req.MerchantName)
	if merchant == "" {
		return entity.RecurringOverride{}, recurring.ErrMerchantRequired
	}
	if !entity.IsValidRecurringStatus(req.RecurringStatus) {
		return entity.RecurringOverride{}, recurring.ErrInvalidRecurringStatus
	}

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.RecurringOverride{}, err
	}

	txRepo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction client")
		return entity.RecurringOverride{}, err
	}

	relatedCount, err := txRepo.Transaction.CountTransactionsByMerchant(ctx, req.UserID, merchant)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"merchant":   merchant,
			"error":      err.Error(),
		}).Error("Failed to count related transactions")
		return entity.RecurringOverride{}, err
	}

	appliedCount := 1
	if req.ApplyToAll {
		appliedCount = relatedCount
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.RecurringOverride{}, err
	}

	override := entity.RecurringOverride{
		ID:                      id,
		UserID:                  req.UserID,
		MerchantName:            merchant,
		OriginalMerchant:        req.OriginalMerchant,
		RecurringStatus:         req.RecurringStatus,
		ApplyToAll:              req.ApplyToAll,
		Reason:                  req.Reason,
		TriggerTransactionID:    req.TriggerTransactionID,
		AppliedCount:            appliedCount,
		RelatedTransactionCount: relatedCount,
		CreatedAt:               time.Now(),
	}

	if err := repo.Override.CreateOverride(ctx, override); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"merchant":   merchant,
			"error":      err.Error(),
		}).Error("Failed to create recurring override")
		return entity.RecurringOverride{}, recurring.ErrCreateOverride
	}

	// The override supersedes any cached heuristic classification.
	cacheKey := redisPkg.FrequencyKey(req.UserID, strings.ToLower(merchant))
	if err := s.redis.DeleteFrequency(ctx, cacheKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"merchant":   merchant,
			"error":      err.Error(),
		}).Warn("Failed to invalidate cached frequency")
	}

	return override, nil
}

func (s *recurringService) GetOverridesByUserID(ctx context.Context, userID string) ([]entity.RecurringOverride, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Override.GetOverridesByUserID(ctx, userID)
}

// GetMerchantFrequency resolves a merchant's cadence. A stored override wins;
// otherwise the heuristic runs over the merchant's transaction dates, with
// the result cached. Cache failures degrade to recomputing.
func (s *recurringService) GetMerchantFrequency(ctx context.Context, userID string, merchant string) (recurring.FrequencyResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	merchant = strings.TrimSpace(merchant)
	if merchant == "" {
		return recurring.FrequencyResponse{}, recurring.ErrMerchantRequired
	}

	repo, err := s.recurringRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return recurring.FrequencyResponse{}, err
	}

	override, found, err := repo.Override.GetOverrideByMerchant(ctx, userID, merchant)
	if err != nil {
		return recurring.FrequencyResponse{}, err
	}

	cacheKey := redisPkg.FrequencyKey(userID, strings.ToLower(merchant))
	if !found {
		if cached, err := s.redis.GetFrequency(ctx, cacheKey); err == nil {
			var response recurring.FrequencyResponse
			if err := jsoniter.UnmarshalFromString(cached, &response); err == nil {
				return response, nil
			}
		}
	}

	txRepo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction client")
		return recurring.FrequencyResponse{}, err
	}

	dates, err := txRepo.Transaction.GetTransactionDatesByMerchant(ctx, userID, merchant)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"merchant":   merchant,
			"error":      err.Error(),
		}).Error("Failed to load transaction dates")
		return recurring.FrequencyResponse{}, err
	}

	response := recurring.FrequencyResponse{
		Merchant:    merchant,
		Frequency:   string(ruleengine.ClassifyFrequency(dates)),
		Source:      frequencySourceHeuristic,
		SampleCount: len(dates),
	}

	if found {
		response.Source = frequencySourceOverride
		response.RecurringStatus = override.RecurringStatus
		return response, nil
	}

	if payload, err := jsoniter.MarshalToString(response); err == nil {
		if err := s.redis.SetFrequency(ctx, cacheKey, payload, frequencyCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"merchant":   merchant,
				"error":      err.Error(),
			}).Warn("Failed to cache frequency classification")
		}
	}

	return response, nil
}
