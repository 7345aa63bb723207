package services_test

import (
	"context"
	"time"

	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	"github.com/bookora/bookora_backend/internal/platform/config"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn        func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	FindUserByPhoneFn     func(ctx context.Context, phone string) (*domain.User, error)
	FindUsersByCompanyFn  func(ctx context.Context, companyID string) ([]domain.User, error)
	FindUsersByIDsFn      func(ctx context.Context, userIDs []string) ([]domain.User, error)
	CountUsersByCompanyFn func(ctx context.Context, companyID string) (int, error)
	CountUsersByRoleFn    func(ctx context.Context, roleID string) (int, error)
	SaveUserFn            func(ctx context.Context, user domain.User) error
	UpdateUserFn          func(ctx context.Context, user domain.User) error
	MarkUserDeletedFn     func(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindUserByPhoneFn != nil {
		return m.FindUserByPhoneFn(ctx, phone)
	}
	args := m.Called(ctx, phone)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	if m.FindUsersByCompanyFn != nil {
		return m.FindUsersByCompanyFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	if m.FindUsersByIDsFn != nil {
		return m.FindUsersByIDsFn(ctx, userIDs)
	}
	args := m.Called(ctx, userIDs)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsersByCompany(ctx context.Context, companyID string) (int, error) {
	if m.CountUsersByCompanyFn != nil {
		return m.CountUsersByCompanyFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountUsersByRole(ctx context.Context, roleID string) (int, error) {
	if m.CountUsersByRoleFn != nil {
		return m.CountUsersByRoleFn(ctx, roleID)
	}
	args := m.Called(ctx, roleID)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	if m.MarkUserDeletedFn != nil {
		return m.MarkUserDeletedFn(ctx, userID, deletedAt, deletedBy)
	}
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
	SaveCompanyFn       func(ctx context.Context, company domain.Company) error
	FindCompanyByIDFn   func(ctx context.Context, companyID string) (*domain.Company, error)
	FindCompanyByNameFn func(ctx context.Context, name string) (*domain.Company, error)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	if m.SaveCompanyFn != nil {
		return m.SaveCompanyFn(ctx, company)
	}
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	if m.FindCompanyByIDFn != nil {
		return m.FindCompanyByIDFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	if m.FindCompanyByNameFn != nil {
		return m.FindCompanyByNameFn(ctx, name)
	}
	args := m.Called(ctx, name)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

// --- Mock RoleRepository ---

type MockRoleRepository struct {
	mock.Mock
	FindRoleByIDFn           func(ctx context.Context, roleID string) (*domain.Role, error)
	FindRoleByNameFn         func(ctx context.Context, companyID string, name string) (*domain.Role, error)
	FindRolesByCompanyFn     func(ctx context.Context, companyID string) ([]domain.Role, error)
	FindAllPermissionsFn     func(ctx context.Context) ([]domain.Permission, error)
	FindPermissionsByIDsFn   func(ctx context.Context, permissionIDs []string) ([]domain.Permission, error)
	FindPermissionsByRoleFn  func(ctx context.Context, roleID string) ([]domain.Permission, error)
	SaveRoleFn               func(ctx context.Context, role domain.Role) error
	UpdateRoleFn             func(ctx context.Context, role domain.Role) error
	ReplaceRolePermissionsFn func(ctx context.Context, roleID string, permissionIDs []string) error
	DeleteRoleFn             func(ctx context.Context, roleID string) error
	DeleteRolePermissionsFn  func(ctx context.Context, roleID string) error
	SavePermissionFn         func(ctx context.Context, permission domain.Permission) error
}

func (m *MockRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	if m.FindRoleByIDFn != nil {
		return m.FindRoleByIDFn(ctx, roleID)
	}
	args := m.Called(ctx, roleID)
	var role *domain.Role
	if args.Get(0) != nil {
		role = args.Get(0).(*domain.Role)
	}
	return role, args.Error(1)
}

func (m *MockRoleRepository) FindRoleByName(ctx context.Context, companyID string, name string) (*domain.Role, error) {
	if m.FindRoleByNameFn != nil {
		return m.FindRoleByNameFn(ctx, companyID, name)
	}
	args := m.Called(ctx, companyID, name)
	var role *domain.Role
	if args.Get(0) != nil {
		role = args.Get(0).(*domain.Role)
	}
	return role, args.Error(1)
}

func (m *MockRoleRepository) FindRolesByCompany(ctx context.Context, companyID string) ([]domain.Role, error) {
	if m.FindRolesByCompanyFn != nil {
		return m.FindRolesByCompanyFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	var roles []domain.Role
	if args.Get(0) != nil {
		roles = args.Get(0).([]domain.Role)
	}
	return roles, args.Error(1)
}

func (m *MockRoleRepository) FindAllPermissions(ctx context.Context) ([]domain.Permission, error) {
	if m.FindAllPermissionsFn != nil {
		return m.FindAllPermissionsFn(ctx)
	}
	args := m.Called(ctx)
	var perms []domain.Permission
	if args.Get(0) != nil {
		perms = args.Get(0).([]domain.Permission)
	}
	return perms, args.Error(1)
}

func (m *MockRoleRepository) FindPermissionsByIDs(ctx context.Context, permissionIDs []string) ([]domain.Permission, error) {
	if m.FindPermissionsByIDsFn != nil {
		return m.FindPermissionsByIDsFn(ctx, permissionIDs)
	}
	args := m.Called(ctx, permissionIDs)
	var perms []domain.Permission
	if args.Get(0) != nil {
		perms = args.Get(0).([]domain.Permission)
	}
	return perms, args.Error(1)
}

func (m *MockRoleRepository) FindPermissionsByRole(ctx context.Context, roleID string) ([]domain.Permission, error) {
	if m.FindPermissionsByRoleFn != nil {
		return m.FindPermissionsByRoleFn(ctx, roleID)
	}
	args := m.Called(ctx, roleID)
	var perms []domain.Permission
	if args.Get(0) != nil {
		perms = args.Get(0).([]domain.Permission)
	}
	return perms, args.Error(1)
}

func (m *MockRoleRepository) SaveRole(ctx context.Context, role domain.Role) error {
	if m.SaveRoleFn != nil {
		return m.SaveRoleFn(ctx, role)
	}
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	if m.UpdateRoleFn != nil {
		return m.UpdateRoleFn(ctx, role)
	}
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	if m.ReplaceRolePermissionsFn != nil {
		return m.ReplaceRolePermissionsFn(ctx, roleID, permissionIDs)
	}
	args := m.Called(ctx, roleID, permissionIDs)
	return args.Error(0)
}

func (m *MockRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	if m.DeleteRoleFn != nil {
		return m.DeleteRoleFn(ctx, roleID)
	}
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

func (m *MockRoleRepository) DeleteRolePermissions(ctx context.Context, roleID string) error {
	if m.DeleteRolePermissionsFn != nil {
		return m.DeleteRolePermissionsFn(ctx, roleID)
	}
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

func (m *MockRoleRepository) SavePermission(ctx context.Context, permission domain.Permission) error {
	if m.SavePermissionFn != nil {
		return m.SavePermissionFn(ctx, permission)
	}
	args := m.Called(ctx, permission)
	return args.Error(0)
}

// --- Mock StoreRepository ---

type MockStoreRepository struct {
	mock.Mock
	SaveStoreFn           func(ctx context.Context, store domain.Store) error
	FindStoreByIDFn       func(ctx context.Context, storeID string) (*domain.Store, error)
	FindStoresByManagerFn func(ctx context.Context, managerID string) ([]domain.Store, error)
	FindStoresByCompanyFn func(ctx context.Context, companyID string) ([]domain.Store, error)
	UpdateStoreFn         func(ctx context.Context, store domain.Store) error
	DeleteStoreFn         func(ctx context.Context, storeID string) error
}

func (m *MockStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	if m.SaveStoreFn != nil {
		return m.SaveStoreFn(ctx, store)
	}
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	if m.FindStoreByIDFn != nil {
		return m.FindStoreByIDFn(ctx, storeID)
	}
	args := m.Called(ctx, storeID)
	var store *domain.Store
	if args.Get(0) != nil {
		store = args.Get(0).(*domain.Store)
	}
	return store, args.Error(1)
}

func (m *MockStoreRepository) FindStoresByManager(ctx context.Context, managerID string) ([]domain.Store, error) {
	if m.FindStoresByManagerFn != nil {
		return m.FindStoresByManagerFn(ctx, managerID)
	}
	args := m.Called(ctx, managerID)
	var stores []domain.Store
	if args.Get(0) != nil {
		stores = args.Get(0).([]domain.Store)
	}
	return stores, args.Error(1)
}

func (m *MockStoreRepository) FindStoresByCompany(ctx context.Context, companyID string) ([]domain.Store, error) {
	if m.FindStoresByCompanyFn != nil {
		return m.FindStoresByCompanyFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	var stores []domain.Store
	if args.Get(0) != nil {
		stores = args.Get(0).([]domain.Store)
	}
	return stores, args.Error(1)
}

func (m *MockStoreRepository) UpdateStore(ctx context.Context, store domain.Store) error {
	if m.UpdateStoreFn != nil {
		return m.UpdateStoreFn(ctx, store)
	}
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) DeleteStore(ctx context.Context, storeID string) error {
	if m.DeleteStoreFn != nil {
		return m.DeleteStoreFn(ctx, storeID)
	}
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
	SaveCategoryFn          func(ctx context.Context, category domain.Category) error
	FindCategoryByIDFn      func(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoriesByStoreFn func(ctx context.Context, storeID string) ([]domain.Category, error)
	UpdateCategoryFn        func(ctx context.Context, category domain.Category) error
	DeleteCategoryFn        func(ctx context.Context, categoryID string) error
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	if m.SaveCategoryFn != nil {
		return m.SaveCategoryFn(ctx, category)
	}
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	if m.FindCategoryByIDFn != nil {
		return m.FindCategoryByIDFn(ctx, categoryID)
	}
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByStore(ctx context.Context, storeID string) ([]domain.Category, error) {
	if m.FindCategoriesByStoreFn != nil {
		return m.FindCategoriesByStoreFn(ctx, storeID)
	}
	args := m.Called(ctx, storeID)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	if m.UpdateCategoryFn != nil {
		return m.UpdateCategoryFn(ctx, category)
	}
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	if m.DeleteCategoryFn != nil {
		return m.DeleteCategoryFn(ctx, categoryID)
	}
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock ServiceRepository ---

type MockServiceRepository struct {
	mock.Mock
	SaveServiceFn            func(ctx context.Context, service domain.Service) error
	FindServiceByIDFn        func(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServicesByStoreFn    func(ctx context.Context, storeID string) ([]domain.Service, error)
	FindServicesByCategoryFn func(ctx context.Context, categoryID string) ([]domain.Service, error)
	UpdateServiceFn          func(ctx context.Context, service domain.Service) error
	DeleteServiceFn          func(ctx context.Context, serviceID string) error
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	if m.SaveServiceFn != nil {
		return m.SaveServiceFn(ctx, service)
	}
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	if m.FindServiceByIDFn != nil {
		return m.FindServiceByIDFn(ctx, serviceID)
	}
	args := m.Called(ctx, serviceID)
	var service *domain.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*domain.Service)
	}
	return service, args.Error(1)
}

func (m *MockServiceRepository) FindServicesByStore(ctx context.Context, storeID string) ([]domain.Service, error) {
	if m.FindServicesByStoreFn != nil {
		return m.FindServicesByStoreFn(ctx, storeID)
	}
	args := m.Called(ctx, storeID)
	var services []domain.Service
	if args.Get(0) != nil {
		services = args.Get(0).([]domain.Service)
	}
	return services, args.Error(1)
}

func (m *MockServiceRepository) FindServicesByCategory(ctx context.Context, categoryID string) ([]domain.Service, error) {
	if m.FindServicesByCategoryFn != nil {
		return m.FindServicesByCategoryFn(ctx, categoryID)
	}
	args := m.Called(ctx, categoryID)
	var services []domain.Service
	if args.Get(0) != nil {
		services = args.Get(0).([]domain.Service)
	}
	return services, args.Error(1)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	if m.UpdateServiceFn != nil {
		return m.UpdateServiceFn(ctx, service)
	}
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	if m.DeleteServiceFn != nil {
		return m.DeleteServiceFn(ctx, serviceID)
	}
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
	SaveClientFn               func(ctx context.Context, client domain.Client) error
	FindClientByIDFn           func(ctx context.Context, clientID string) (*domain.Client, error)
	FindClientsByStoreFn       func(ctx context.Context, storeID string) ([]domain.Client, error)
	FindClientByPhoneInStoreFn func(ctx context.Context, storeID string, phone string) (*domain.Client, error)
	FindClientByEmailInStoreFn func(ctx context.Context, storeID string, email string) (*domain.Client, error)
	UpdateClientFn             func(ctx context.Context, client domain.Client) error
	AppendClientNoteFn         func(ctx context.Context, clientID string, note domain.ClientNote) error
	DeleteClientFn             func(ctx context.Context, clientID string) error
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	if m.SaveClientFn != nil {
		return m.SaveClientFn(ctx, client)
	}
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.FindClientByIDFn != nil {
		return m.FindClientByIDFn(ctx, clientID)
	}
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClientsByStore(ctx context.Context, storeID string) ([]domain.Client, error) {
	if m.FindClientsByStoreFn != nil {
		return m.FindClientsByStoreFn(ctx, storeID)
	}
	args := m.Called(ctx, storeID)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) FindClientByPhoneInStore(ctx context.Context, storeID string, phone string) (*domain.Client, error) {
	if m.FindClientByPhoneInStoreFn != nil {
		return m.FindClientByPhoneInStoreFn(ctx, storeID, phone)
	}
	args := m.Called(ctx, storeID, phone)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClientByEmailInStore(ctx context.Context, storeID string, email string) (*domain.Client, error) {
	if m.FindClientByEmailInStoreFn != nil {
		return m.FindClientByEmailInStoreFn(ctx, storeID, email)
	}
	args := m.Called(ctx, storeID, email)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	if m.UpdateClientFn != nil {
		return m.UpdateClientFn(ctx, client)
	}
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) AppendClientNote(ctx context.Context, clientID string, note domain.ClientNote) error {
	if m.AppendClientNoteFn != nil {
		return m.AppendClientNoteFn(ctx, clientID, note)
	}
	args := m.Called(ctx, clientID, note)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	if m.DeleteClientFn != nil {
		return m.DeleteClientFn(ctx, clientID)
	}
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock AppointmentRepository ---

type MockAppointmentRepository struct {
	mock.Mock
	SaveAppointmentFn        func(ctx context.Context, appointment domain.Appointment) error
	FindAppointmentByIDFn    func(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	FindAppointmentsByUserFn func(ctx context.Context, userID string) ([]domain.Appointment, error)
	UpdateAppointmentFn      func(ctx context.Context, appointment domain.Appointment) error
	DeleteAppointmentFn      func(ctx context.Context, appointmentID string) error
}

func (m *MockAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	if m.SaveAppointmentFn != nil {
		return m.SaveAppointmentFn(ctx, appointment)
	}
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	if m.FindAppointmentByIDFn != nil {
		return m.FindAppointmentByIDFn(ctx, appointmentID)
	}
	args := m.Called(ctx, appointmentID)
	var appointment *domain.Appointment
	if args.Get(0) != nil {
		appointment = args.Get(0).(*domain.Appointment)
	}
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if m.FindAppointmentsByUserFn != nil {
		return m.FindAppointmentsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var appointments []domain.Appointment
	if args.Get(0) != nil {
		appointments = args.Get(0).([]domain.Appointment)
	}
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment domain.Appointment) error {
	if m.UpdateAppointmentFn != nil {
		return m.UpdateAppointmentFn(ctx, appointment)
	}
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if m.DeleteAppointmentFn != nil {
		return m.DeleteAppointmentFn(ctx, appointmentID)
	}
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

// --- Mock VisibilityRepository ---

type MockVisibilityRepository struct {
	mock.Mock
	FindRoleVisibilityTargetsFn      func(ctx context.Context, roleID string) ([]string, error)
	SaveRoleUserVisibilityFn         func(ctx context.Context, link domain.RoleUserVisibility) error
	DeleteRoleUserVisibilityByRoleFn func(ctx context.Context, roleID string) error
	FindEmployeeVisibilityTargetsFn  func(ctx context.Context, viewerUserID string) ([]string, error)
	ReplaceEmployeeVisibilityFn      func(ctx context.Context, viewerUserID string, targetUserIDs []string) error
}

func (m *MockVisibilityRepository) FindRoleVisibilityTargets(ctx context.Context, roleID string) ([]string, error) {
	if m.FindRoleVisibilityTargetsFn != nil {
		return m.FindRoleVisibilityTargetsFn(ctx, roleID)
	}
	args := m.Called(ctx, roleID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockVisibilityRepository) SaveRoleUserVisibility(ctx context.Context, link domain.RoleUserVisibility) error {
	if m.SaveRoleUserVisibilityFn != nil {
		return m.SaveRoleUserVisibilityFn(ctx, link)
	}
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockVisibilityRepository) DeleteRoleUserVisibilityByRole(ctx context.Context, roleID string) error {
	if m.DeleteRoleUserVisibilityByRoleFn != nil {
		return m.DeleteRoleUserVisibilityByRoleFn(ctx, roleID)
	}
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

func (m *MockVisibilityRepository) FindEmployeeVisibilityTargets(ctx context.Context, viewerUserID string) ([]string, error) {
	if m.FindEmployeeVisibilityTargetsFn != nil {
		return m.FindEmployeeVisibilityTargetsFn(ctx, viewerUserID)
	}
	args := m.Called(ctx, viewerUserID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockVisibilityRepository) ReplaceEmployeeVisibility(ctx context.Context, viewerUserID string, targetUserIDs []string) error {
	if m.ReplaceEmployeeVisibilityFn != nil {
		return m.ReplaceEmployeeVisibilityFn(ctx, viewerUserID, targetUserIDs)
	}
	args := m.Called(ctx, viewerUserID, targetUserIDs)
	return args.Error(0)
}

// --- Mock RefreshTokenRepository ---

type MockRefreshTokenRepository struct {
	mock.Mock
	SaveRefreshTokenFn          func(ctx context.Context, token domain.RefreshToken) error
	FindRefreshTokenByHashFn    func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	DeleteRefreshTokensByUserFn func(ctx context.Context, userID string) error
	DeleteRefreshTokenByHashFn  func(ctx context.Context, tokenHash string) error
}

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	if m.SaveRefreshTokenFn != nil {
		return m.SaveRefreshTokenFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if m.FindRefreshTokenByHashFn != nil {
		return m.FindRefreshTokenByHashFn(ctx, tokenHash)
	}
	args := m.Called(ctx, tokenHash)
	var token *domain.RefreshToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.RefreshToken)
	}
	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokensByUser(ctx context.Context, userID string) error {
	if m.DeleteRefreshTokensByUserFn != nil {
		return m.DeleteRefreshTokensByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	if m.DeleteRefreshTokenByHashFn != nil {
		return m.DeleteRefreshTokenByHashFn(ctx, tokenHash)
	}
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

// --- Mock OTPRepository ---

type MockOTPRepository struct {
	mock.Mock
	SaveOTPFn              func(ctx context.Context, otp domain.OTP) error
	FindLatestOTPByPhoneFn func(ctx context.Context, phone string) (*domain.OTP, error)
	MarkOTPConsumedFn      func(ctx context.Context, otpID string) error
}

func (m *MockOTPRepository) SaveOTP(ctx context.Context, otp domain.OTP) error {
	if m.SaveOTPFn != nil {
		return m.SaveOTPFn(ctx, otp)
	}
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindLatestOTPByPhone(ctx context.Context, phone string) (*domain.OTP, error) {
	if m.FindLatestOTPByPhoneFn != nil {
		return m.FindLatestOTPByPhoneFn(ctx, phone)
	}
	args := m.Called(ctx, phone)
	var otp *domain.OTP
	if args.Get(0) != nil {
		otp = args.Get(0).(*domain.OTP)
	}
	return otp, args.Error(1)
}

func (m *MockOTPRepository) MarkOTPConsumed(ctx context.Context, otpID string) error {
	if m.MarkOTPConsumedFn != nil {
		return m.MarkOTPConsumedFn(ctx, otpID)
	}
	args := m.Called(ctx, otpID)
	return args.Error(0)
}

// --- Mock PermissionChecker ---

type MockPermissionChecker struct {
	mock.Mock
	HasPermissionFn func(ctx context.Context, userID, module, action string) (bool, error)
}

func (m *MockPermissionChecker) HasPermission(ctx context.Context, userID, module, action string) (bool, error) {
	if m.HasPermissionFn != nil {
		return m.HasPermissionFn(ctx, userID, module, action)
	}
	args := m.Called(ctx, userID, module, action)
	return args.Bool(0), args.Error(1)
}

// allowAllPermissions grants every capability check.
func allowAllPermissions() *MockPermissionChecker {
	return &MockPermissionChecker{
		HasPermissionFn: func(ctx context.Context, userID, module, action string) (bool, error) {
			return true, nil
		},
	}
}

// denyAllPermissions refuses every capability check.
func denyAllPermissions() *MockPermissionChecker {
	return &MockPermissionChecker{
		HasPermissionFn: func(ctx context.Context, userID, module, action string) (bool, error) {
			return false, nil
		},
	}
}

// --- Mock NotificationSender ---

type MockNotificationSender struct {
	mock.Mock
	SendOTPFn func(ctx context.Context, destination, code string) error
}

func (m *MockNotificationSender) SendOTP(ctx context.Context, destination, code string) error {
	if m.SendOTPFn != nil {
		return m.SendOTPFn(ctx, destination, code)
	}
	args := m.Called(ctx, destination, code)
	return args.Error(0)
}

// --- Mock VisibilitySvcFacade ---

type MockVisibilityService struct {
	mock.Mock
	GetVisibleUsersFn  func(ctx context.Context, actorUserID string) ([]domain.User, error)
	AssignVisibilityFn func(ctx context.Context, callerUserID, viewerUserID string, targetUserIDs []string) error
	GetVisibilityFn    func(ctx context.Context, callerUserID, viewerUserID string) ([]domain.User, error)
}

func (m *MockVisibilityService) GetVisibleUsers(ctx context.Context, actorUserID string) ([]domain.User, error) {
	if m.GetVisibleUsersFn != nil {
		return m.GetVisibleUsersFn(ctx, actorUserID)
	}
	args := m.Called(ctx, actorUserID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockVisibilityService) AssignVisibility(ctx context.Context, callerUserID, viewerUserID string, targetUserIDs []string) error {
	if m.AssignVisibilityFn != nil {
		return m.AssignVisibilityFn(ctx, callerUserID, viewerUserID, targetUserIDs)
	}
	args := m.Called(ctx, callerUserID, viewerUserID, targetUserIDs)
	return args.Error(0)
}

func (m *MockVisibilityService) GetVisibility(ctx context.Context, callerUserID, viewerUserID string) ([]domain.User, error) {
	if m.GetVisibilityFn != nil {
		return m.GetVisibilityFn(ctx, callerUserID, viewerUserID)
	}
	args := m.Called(ctx, callerUserID, viewerUserID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Shared test fixtures ---

// testRepos bundles one mock of every repository for wiring through the
// service container.
type testRepos struct {
	company     *MockCompanyRepository
	role        *MockRoleRepository
	user        *MockUserRepository
	store       *MockStoreRepository
	category    *MockCategoryRepository
	service     *MockServiceRepository
	client      *MockClientRepository
	appointment *MockAppointmentRepository
	visibility  *MockVisibilityRepository
	refresh     *MockRefreshTokenRepository
	otp         *MockOTPRepository
}

func newTestRepos() *testRepos {
	return &testRepos{
		company:     new(MockCompanyRepository),
		role:        new(MockRoleRepository),
		user:        new(MockUserRepository),
		store:       new(MockStoreRepository),
		category:    new(MockCategoryRepository),
		service:     new(MockServiceRepository),
		client:      new(MockClientRepository),
		appointment: new(MockAppointmentRepository),
		visibility:  new(MockVisibilityRepository),
		refresh:     new(MockRefreshTokenRepository),
		otp:         new(MockOTPRepository),
	}
}

func (r *testRepos) provider() *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CompanyRepo:      r.company,
		RoleRepo:         r.role,
		UserRepo:         r.user,
		StoreRepo:        r.store,
		CategoryRepo:     r.category,
		ServiceRepo:      r.service,
		ClientRepo:       r.client,
		AppointmentRepo:  r.appointment,
		VisibilityRepo:   r.visibility,
		RefreshTokenRepo: r.refresh,
		OTPRepo:          r.otp,
	}
}

// grantAllPermissions points the actor at a role whose permission set covers
// the full catalog, so container-wired services pass the RBAC check.
func (r *testRepos) grantAllPermissions(actor *domain.User) {
	r.user.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		u := *actor
		u.UserID = userID
		return &u, nil
	}
	r.role.FindPermissionsByRoleFn = func(ctx context.Context, roleID string) ([]domain.Permission, error) {
		return fullPermissionCatalog(), nil
	}
}

func fullPermissionCatalog() []domain.Permission {
	modules := []string{
		domain.ModuleUser, domain.ModuleRole, domain.ModuleStore,
		domain.ModuleCategory, domain.ModuleService, domain.ModuleClient,
		domain.ModuleAppointment, domain.ModuleVisibility,
	}
	actions := []string{domain.ActionCreate, domain.ActionRead, domain.ActionUpdate, domain.ActionDelete}
	perms := make([]domain.Permission, 0, len(modules)*len(actions)+1)
	for _, mod := range modules {
		for _, act := range actions {
			perms = append(perms, domain.Permission{
				PermissionID: mod + "-" + act,
				Module:       mod,
				Action:       act,
			})
		}
	}
	perms = append(perms, domain.Permission{
		PermissionID: domain.ModuleVisibility + "-" + domain.ActionAssign,
		Module:       domain.ModuleVisibility,
		Action:       domain.ActionAssign,
	})
	return perms
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                       "8080",
		JWTSecret:                  "test-secret-key-for-units",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "bookora-test",
		RefreshTokenExpiryDuration: 24 * time.Hour,
		OTPDigits:                  6,
		OTPExpiryDuration:          5 * time.Minute,
	}
}

// futureSlot returns a timestamp on a day next week at the given local
// wall-clock time, guaranteed to be in the future and inside business hours
// when hour is chosen between 9 and 18.
func futureSlot(hour, min int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, time.Local).AddDate(0, 0, 7)
}
