package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vbonduro/foodlog/internal/domain"
	"github.com/vbonduro/foodlog/internal/nutrition"
	"github.com/vbonduro/foodlog/internal/recordstore"
)

var (
	// ErrEstimationFailed marks a failed inference call or an unparseable reply.
	ErrEstimationFailed = errors.New("nutrition estimation failed")
	// ErrPersistFailed marks a failed write to the record store.
	ErrPersistFailed = errors.New("meal record not saved")
)

type MealService struct {
	analyzer nutrition.Analyzer
	records  recordstore.RecordStore
	now      func() time.Time
	logger   *slog.Logger
}

func NewMealService(analyzer nutrition.Analyzer, records recordstore.RecordStore, logger *slog.Logger) *MealService {
	return &MealService{
		analyzer: analyzer,
		records:  records,
		now:      time.Now,
		logger:   logger,
	}
}

// EstimateNutrition asks the inference backend once for an estimate. Every
// failure wraps ErrEstimationFailed.
func (s *MealService) EstimateNutrition(ctx context.Context, description string) (*domain.Estimate, error) {
	s.logger.Info("nutrition analysis started", "description", description)

	result, err := s.analyzer.Analyze(ctx, description)
	if err != nil {
		s.logger.Error("nutrition analysis failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrEstimationFailed, err)
	}

	s.logger.Debug("nutrition analysis raw response", "response", result.RawResponse)
	s.logger.Info("nutrition analysis complete",
		"calories", result.Estimate.Calories,
		"protein", result.Estimate.Protein,
		"fiber", result.Estimate.Fiber,
	)
	return &result.Estimate, nil
}

// LogMeal writes one record for today. Every failure wraps ErrPersistFailed;
// nothing is retried.
func (s *MealService) LogMeal(ctx context.Context, description string, estimate domain.Estimate) (*domain.Meal, error) {
	meal := &domain.Meal{
		Name:     cases.Title(language.Und).String(description),
		Calories: estimate.Calories,
		Protein:  estimate.Protein,
		Fiber:    estimate.Fiber,
		Date:     s.now().Format(time.DateOnly),
	}

	recordID, err := s.records.Create(ctx, meal)
	if err != nil {
		s.logger.Error("failed to create meal record", "name", meal.Name, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	s.logger.Info("meal record created", "record_id", recordID, "name", meal.Name, "date", meal.Date)
	return meal, nil
}
