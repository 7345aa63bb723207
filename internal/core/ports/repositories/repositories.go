package repositories

// RepositoryProvider bundles all repositories for dependency injection into
// the service container.
type RepositoryProvider struct {
	CompanyRepo      CompanyRepository
	RoleRepo         RoleRepository
	UserRepo         UserRepository
	StoreRepo        StoreRepository
	CategoryRepo     CategoryRepository
	ServiceRepo      ServiceRepository
	ClientRepo       ClientRepository
	AppointmentRepo  AppointmentRepository
	VisibilityRepo   VisibilityRepository
	RefreshTokenRepo RefreshTokenRepository
	OTPRepo          OTPRepository
}
