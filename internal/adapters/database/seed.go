package database

import (
	"context"
	stderrors "errors"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"terraweave.app/internal/ports"
	"terraweave.app/pkg/errors"
)

// Seeder inserts the fixed reference dataset. Every step inserts only rows whose
// natural key is absent, so running it again changes nothing.
type Seeder struct {
	db            *gorm.DB
	hasher        ports.PasswordHasher
	clock         clockwork.Clock
	adminPassword string
}

// SeederConfig holds the dependencies of a Seeder
type SeederConfig struct {
	DB            *gorm.DB
	Hasher        ports.PasswordHasher
	Clock         clockwork.Clock
	AdminPassword string
}

// NewSeeder creates a new seeder
func NewSeeder(config SeederConfig) (*Seeder, error) {
	if config.DB == nil {
		return nil, errors.NewValidationError("database cannot be nil")
	}
	if config.Hasher == nil {
		return nil, errors.NewValidationError("password hasher cannot be nil")
	}
	if config.AdminPassword == "" {
		return nil, errors.NewValidationError("admin password cannot be empty")
	}
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}

	return &Seeder{
		db:            config.DB,
		hasher:        config.Hasher,
		clock:         config.Clock,
		adminPassword: config.AdminPassword,
	}, nil
}

func (s *Seeder) insertMissing(ctx context.Context, rows interface{}, what string) error {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to seed "+what, result.Error)
	}
	return nil
}

// SeedUsers inserts the demo logins with hashed passwords
func (s *Seeder) SeedUsers(ctx context.Context) error {
	users := seedUsers(s.adminPassword)
	models := make([]UserModel, 0, len(users))
	for _, u := range users {
		hash, err := s.hasher.Hash(u.password)
		if err != nil {
			return errors.NewDatabaseError("failed to hash password of "+u.email, err)
		}
		models = append(models, UserModel{
			Email:        u.email,
			PasswordHash: hash,
			Name:         u.name,
			Organization: u.organization,
			CreatedAt:    s.clock.Now().UTC(),
		})
	}
	return s.insertMissing(ctx, &models, "users")
}

// SeedCities inserts the monitored city snapshots
func (s *Seeder) SeedCities(ctx context.Context) error {
	cities := seedCities()
	now := s.clock.Now().UTC()
	for i := range cities {
		cities[i].LastUpdated = now
	}
	return s.insertMissing(ctx, &cities, "cities")
}

// SeedClimateData inserts the time series points
func (s *Seeder) SeedClimateData(ctx context.Context) error {
	points := seedClimateData()
	now := s.clock.Now().UTC()
	for i := range points {
		points[i].CreatedAt = now
	}
	return s.insertMissing(ctx, &points, "climate data")
}

// SeedEnergyPlants inserts the power plant reference rows
func (s *Seeder) SeedEnergyPlants(ctx context.Context) error {
	plants := seedEnergyPlants()
	return s.insertMissing(ctx, &plants, "energy plants")
}

// SeedRecommendations inserts the action recommendations
func (s *Seeder) SeedRecommendations(ctx context.Context) error {
	recommendations := seedRecommendations()
	return s.insertMissing(ctx, &recommendations, "recommendations")
}

// SeedUserActions links seeded users to the recommendations they completed.
// It needs users and recommendations to be present.
func (s *Seeder) SeedUserActions(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	actions := make([]UserActionModel, 0)
	for _, a := range seedUserActions() {
		var user UserModel
		if err := db.Where("email = ?", a.email).First(&user).Error; err != nil {
			return lookupError("user "+a.email, err)
		}

		var rec RecommendationModel
		err := db.Where("location_type = ? AND climate_issue = ?", a.locationType, a.climateIssue).First(&rec).Error
		if err != nil {
			return lookupError("recommendation "+a.locationType+"/"+a.climateIssue, err)
		}

		completed := a.dateCompleted
		actions = append(actions, UserActionModel{
			UserID:           user.ID,
			RecommendationID: rec.ID,
			ActionTaken:      true,
			DateCompleted:    &completed,
			ImpactCO2:        rec.ImpactCO2,
			Notes:            a.notes,
		})
	}

	return s.insertMissing(ctx, &actions, "user actions")
}

func lookupError(what string, err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFoundError(what + " not seeded")
	}
	return errors.NewDatabaseError("failed to look up "+what, err)
}
