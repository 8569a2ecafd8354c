package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"terraweave.app/internal/ports"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// UserRepository is a testify mock of ports.UserRepository
type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(t, &m.Mock)
	return m
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*ports.UserData, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*ports.UserData)
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*ports.UserData, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*ports.UserData)
	return user, args.Error(1)
}

func (m *UserRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// CityRepository is a testify mock of ports.CityRepository
type CityRepository struct {
	mock.Mock
}

func NewCityRepository(t testingT) *CityRepository {
	m := &CityRepository{}
	register(t, &m.Mock)
	return m
}

func (m *CityRepository) ListCities(ctx context.Context) ([]*ports.CityClimateData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*ports.CityClimateData)
	return rows, args.Error(1)
}

// ClimateDataRepository is a testify mock of ports.ClimateDataRepository
type ClimateDataRepository struct {
	mock.Mock
}

func NewClimateDataRepository(t testingT) *ClimateDataRepository {
	m := &ClimateDataRepository{}
	register(t, &m.Mock)
	return m
}

func (m *ClimateDataRepository) FindRecentByLocation(ctx context.Context, location string, limit int) ([]*ports.ClimateDataPointData, error) {
	args := m.Called(ctx, location, limit)
	rows, _ := args.Get(0).([]*ports.ClimateDataPointData)
	return rows, args.Error(1)
}

// EnergyPlantRepository is a testify mock of ports.EnergyPlantRepository
type EnergyPlantRepository struct {
	mock.Mock
}

func NewEnergyPlantRepository(t testingT) *EnergyPlantRepository {
	m := &EnergyPlantRepository{}
	register(t, &m.Mock)
	return m
}

func (m *EnergyPlantRepository) ListByEmissions(ctx context.Context) ([]*ports.EnergyPlantData, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*ports.EnergyPlantData)
	return rows, args.Error(1)
}

// RecommendationRepository is a testify mock of ports.RecommendationRepository
type RecommendationRepository struct {
	mock.Mock
}

func NewRecommendationRepository(t testingT) *RecommendationRepository {
	m := &RecommendationRepository{}
	register(t, &m.Mock)
	return m
}

func (m *RecommendationRepository) ListByLocationType(ctx context.Context, locationType string) ([]*ports.RecommendationData, error) {
	args := m.Called(ctx, locationType)
	rows, _ := args.Get(0).([]*ports.RecommendationData)
	return rows, args.Error(1)
}

// UserActionRepository is a testify mock of ports.UserActionRepository
type UserActionRepository struct {
	mock.Mock
}

func NewUserActionRepository(t testingT) *UserActionRepository {
	m := &UserActionRepository{}
	register(t, &m.Mock)
	return m
}

func (m *UserActionRepository) ListCompletedByUser(ctx context.Context, userID uint) ([]*ports.UserActionData, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*ports.UserActionData)
	return rows, args.Error(1)
}
