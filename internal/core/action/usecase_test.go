package action

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"terraweave.app/internal/mocks"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

type testDeps struct {
	recommendations *mocks.RecommendationRepository
	userActions     *mocks.UserActionRepository
}

func newTestUseCase(t *testing.T) (*UseCase, testDeps) {
	deps := testDeps{
		recommendations: mocks.NewRecommendationRepository(t),
		userActions:     mocks.NewUserActionRepository(t),
	}
	uc, err := NewUseCase(UseCaseDependencies{
		RecommendationRepo: deps.recommendations,
		UserActionRepo:     deps.userActions,
		Logger:             mocks.NewLogger(t).AllowAll(),
	})
	require.NoError(t, err)
	return uc, deps
}

func TestUseCase_ListRecommendations(t *testing.T) {
	uc, deps := newTestUseCase(t)

	deps.recommendations.On("ListByLocationType", mock.Anything, LocationTypeResidential).
		Return([]*ports.RecommendationData{
			{ID: 2, LocationType: "residential", ClimateIssue: "energy_use", RecommendationText: "Switch to a renewable electricity tariff", ImpactCO2: decimal.RequireFromString("3.0"), DifficultyLevel: "easy", EstimatedCost: "low"},
			{ID: 1, LocationType: "residential", ClimateIssue: "lighting", RecommendationText: "Replace bulbs with LED lighting", ImpactCO2: decimal.RequireFromString("1.2"), DifficultyLevel: "easy", EstimatedCost: "low"},
		}, nil)

	recs, err := uc.ListRecommendations(context.Background(), RecommendationRequest{LocationType: " Residential "})

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.True(t, recs[0].ImpactCO2.GreaterThan(recs[1].ImpactCO2))
	assert.Equal(t, "Switch to a renewable electricity tariff", recs[0].Text)
}

func TestUseCase_ListRecommendations_UnknownTypeIsEmpty(t *testing.T) {
	uc, deps := newTestUseCase(t)

	deps.recommendations.On("ListByLocationType", mock.Anything, "orbital").
		Return([]*ports.RecommendationData{}, nil)

	recs, err := uc.ListRecommendations(context.Background(), RecommendationRequest{LocationType: "orbital"})

	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestUseCase_ListRecommendations_BlankTypeIsEmpty(t *testing.T) {
	for _, locationType := range []string{"", "   "} {
		uc, deps := newTestUseCase(t)

		recs, err := uc.ListRecommendations(context.Background(), RecommendationRequest{LocationType: locationType})

		require.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
		deps.recommendations.AssertNotCalled(t, "ListByLocationType", mock.Anything, mock.Anything)
	}
}

func TestUseCase_ListRecommendations_Errors(t *testing.T) {

	t.Run("StoreError", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.recommendations.On("ListByLocationType", mock.Anything, LocationTypeUrban).
			Return(nil, errors.NewDatabaseError("failed", fmt.Errorf("timeout")))

		_, err := uc.ListRecommendations(context.Background(), RecommendationRequest{LocationType: "urban"})

		assert.True(t, errors.IsDatabaseError(err))
	})
}

func TestUseCase_Summarize(t *testing.T) {
	uc, deps := newTestUseCase(t)

	deps.userActions.On("ListCompletedByUser", mock.Anything, uint(1)).
		Return([]*ports.UserActionData{
			{ID: 1, UserID: 1, RecommendationID: 1, ActionTaken: true, ImpactCO2: decimal.RequireFromString("1.2"), RecommendationText: "Replace bulbs with LED lighting"},
			{ID: 2, UserID: 1, RecommendationID: 4, ActionTaken: true, ImpactCO2: decimal.RequireFromString("0.8"), RecommendationText: "Commute by public transport"},
		}, nil)

	summary, err := uc.Summarize(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, summary.Actions, 2)
	assert.Equal(t, "2.0", summary.TotalImpactCO2.StringFixed(1))
}

func TestUseCase_Summarize_ZeroUser(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Summarize(context.Background(), 0)

	assert.True(t, errors.IsValidationError(err))
}

func TestIsKnownLocationType(t *testing.T) {
	assert.True(t, IsKnownLocationType("urban"))
	assert.True(t, IsKnownLocationType("Corporate"))
	assert.False(t, IsKnownLocationType("rural"))
}
