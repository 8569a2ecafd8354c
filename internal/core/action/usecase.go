package action

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

type UseCase struct {
	recommendationRepo ports.RecommendationRepository
	userActionRepo     ports.UserActionRepository
	logger             ports.Logger
}

type UseCaseDependencies struct {
	RecommendationRepo ports.RecommendationRepository
	UserActionRepo     ports.UserActionRepository
	Logger             ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.RecommendationRepo == nil {
		return nil, errors.NewValidationError("recommendation repository is required")
	}
	if deps.UserActionRepo == nil {
		return nil, errors.NewValidationError("user action repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		recommendationRepo: deps.RecommendationRepo,
		userActionRepo:     deps.UserActionRepo,
		logger:             deps.Logger,
	}, nil
}

// ListRecommendations returns the recommendations for a location type, highest impact first.
// Unknown or blank location types yield an empty list.
func (uc *UseCase) ListRecommendations(ctx context.Context, request RecommendationRequest) ([]Recommendation, error) {
	request.Normalize()
	if !request.HasLocationType() {
		uc.logger.Debug("Blank location type requested")
		return []Recommendation{}, nil
	}

	if !IsKnownLocationType(request.LocationType) {
		uc.logger.Debug("Unknown location type requested", ports.F("location_type", request.LocationType))
	}

	rows, err := uc.recommendationRepo.ListByLocationType(ctx, request.LocationType)
	if err != nil {
		uc.logger.Error("Failed to list recommendations",
			ports.F("location_type", request.LocationType),
			ports.F("error", err))
		return nil, fmt.Errorf("list recommendations for %s: %w", request.LocationType, err)
	}

	recommendations := make([]Recommendation, 0, len(rows))
	for _, row := range rows {
		recommendations = append(recommendations, Recommendation{
			ID:              row.ID,
			LocationType:    row.LocationType,
			ClimateIssue:    row.ClimateIssue,
			Text:            row.RecommendationText,
			ImpactCO2:       row.ImpactCO2,
			DifficultyLevel: row.DifficultyLevel,
			EstimatedCost:   row.EstimatedCost,
		})
	}
	return recommendations, nil
}

// Summarize collects the actions a user has completed and their total CO2 impact
func (uc *UseCase) Summarize(ctx context.Context, userID uint) (*Summary, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user id is required")
	}

	rows, err := uc.userActionRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list user actions",
			ports.F("user_id", userID),
			ports.F("error", err))
		return nil, fmt.Errorf("summarize actions for user %d: %w", userID, err)
	}

	summary := &Summary{
		UserID:         userID,
		Actions:        make([]CompletedAction, 0, len(rows)),
		TotalImpactCO2: decimal.Zero,
	}
	for _, row := range rows {
		summary.Actions = append(summary.Actions, CompletedAction{
			ID:               row.ID,
			RecommendationID: row.RecommendationID,
			Recommendation:   row.RecommendationText,
			DateCompleted:    row.DateCompleted,
			ImpactCO2:        row.ImpactCO2,
			Notes:            row.Notes,
		})
		summary.TotalImpactCO2 = summary.TotalImpactCO2.Add(row.ImpactCO2)
	}
	return summary, nil
}
