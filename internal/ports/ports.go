package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Store
	UserRepository           UserRepository
	CityRepository           CityRepository
	ClimateDataRepository    ClimateDataRepository
	EnergyPlantRepository    EnergyPlantRepository
	RecommendationRepository RecommendationRepository
	UserActionRepository     UserActionRepository

	// Security
	TokenService   TokenService
	PasswordHasher PasswordHasher

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
