package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/core/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	userRepo    *MockUserRepository
	companyRepo *MockCompanyRepository
	roleRepo    *MockRoleRepository
	storeRepo   *MockStoreRepository
	visibility  *MockVisibilityService
}

func newUserFixture() *userFixture {
	f := &userFixture{
		userRepo:    new(MockUserRepository),
		companyRepo: new(MockCompanyRepository),
		roleRepo:    new(MockRoleRepository),
		storeRepo:   new(MockStoreRepository),
		visibility:  new(MockVisibilityService),
	}
	f.userRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, CompanyID: testCompanyID, RoleID: "creator-role"}, nil
	}
	return f
}

func (f *userFixture) build() portssvc.UserSvcFacade {
	return services.NewUserService(f.userRepo, f.companyRepo, f.roleRepo, f.storeRepo, allowAllPermissions(), f.visibility)
}

func employeeRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:     "Robin",
		Email:    "robin@example.com",
		Phone:    "+14155550111",
		Password: "long-enough-pw",
		RoleID:   "role-emp",
	}
}

func (f *userFixture) arrangeHappyCreate() {
	f.companyRepo.FindCompanyByIDFn = func(ctx context.Context, companyID string) (*domain.Company, error) {
		return &domain.Company{CompanyID: companyID, Name: "Glow Studio", UserLimit: 50}, nil
	}
	f.userRepo.CountUsersByCompanyFn = func(ctx context.Context, companyID string) (int, error) {
		return 3, nil
	}
	f.roleRepo.FindRoleByIDFn = func(ctx context.Context, roleID string) (*domain.Role, error) {
		return &domain.Role{RoleID: roleID, Name: domain.RoleEmployee, CompanyID: testCompanyID}, nil
	}
	f.userRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	f.userRepo.FindUserByPhoneFn = func(ctx context.Context, phone string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	f.userRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		return nil
	}
}

func TestCreateEmployee_Success(t *testing.T) {
	f := newUserFixture()
	f.arrangeHappyCreate()
	var saved domain.User
	f.userRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	got, err := f.build().CreateEmployee(context.Background(), actorID, employeeRequest())
	require.NoError(t, err)
	assert.Equal(t, testCompanyID, got.CompanyID)
	assert.Equal(t, "role-emp", got.RoleID)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsVerified)
	assert.NotEqual(t, "long-enough-pw", saved.PasswordHash)
	assert.Equal(t, actorID, saved.CreatedBy)
}

func TestCreateEmployee_CompanyUserLimitReached(t *testing.T) {
	f := newUserFixture()
	f.arrangeHappyCreate()
	f.companyRepo.FindCompanyByIDFn = func(ctx context.Context, companyID string) (*domain.Company, error) {
		return &domain.Company{CompanyID: companyID, UserLimit: 3}, nil
	}
	f.userRepo.CountUsersByCompanyFn = func(ctx context.Context, companyID string) (int, error) {
		return 3, nil
	}

	_, err := f.build().CreateEmployee(context.Background(), actorID, employeeRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "Company user limit reached (3)")
}

func TestCreateEmployee_RoleUserLimitReached(t *testing.T) {
	f := newUserFixture()
	f.arrangeHappyCreate()
	f.roleRepo.FindRoleByIDFn = func(ctx context.Context, roleID string) (*domain.Role, error) {
		return &domain.Role{RoleID: roleID, Name: domain.RoleManager, CompanyID: testCompanyID, UserLimit: 2}, nil
	}
	f.userRepo.CountUsersByRoleFn = func(ctx context.Context, roleID string) (int, error) {
		return 2, nil
	}

	_, err := f.build().CreateEmployee(context.Background(), actorID, employeeRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "Role user limit reached (2)")
}

func TestCreateEmployee_RoleFromAnotherCompany(t *testing.T) {
	f := newUserFixture()
	f.arrangeHappyCreate()
	f.roleRepo.FindRoleByIDFn = func(ctx context.Context, roleID string) (*domain.Role, error) {
		return &domain.Role{RoleID: roleID, CompanyID: "other-company"}, nil
	}

	_, err := f.build().CreateEmployee(context.Background(), actorID, employeeRequest())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	f := newUserFixture()
	f.arrangeHappyCreate()
	f.userRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{UserID: "other", Email: email}, nil
	}

	_, err := f.build().CreateEmployee(context.Background(), actorID, employeeRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "user with this email already exists")
}

func TestCreateEmployee_StoreFromAnotherCompany(t *testing.T) {
	f := newUserFixture()
	f.arrangeHappyCreate()
	f.storeRepo.FindStoreByIDFn = func(ctx context.Context, storeID string) (*domain.Store, error) {
		return &domain.Store{StoreID: storeID, CompanyID: "other-company"}, nil
	}

	req := employeeRequest()
	req.StoreID = strPtr("store-9")
	_, err := f.build().CreateEmployee(context.Background(), actorID, req)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetUser_CrossCompanySurfacesAsNotFound(t *testing.T) {
	f := newUserFixture()
	f.userRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		if userID == actorID {
			return &domain.User{UserID: userID, CompanyID: testCompanyID, RoleID: "creator-role"}, nil
		}
		return &domain.User{UserID: userID, CompanyID: "other-company"}, nil
	}

	_, err := f.build().GetUser(context.Background(), actorID, "foreign-user")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListVisibleUsers_DelegatesToVisibilityGraph(t *testing.T) {
	f := newUserFixture()
	f.visibility.GetVisibleUsersFn = func(ctx context.Context, actorUserID string) ([]domain.User, error) {
		return []domain.User{{UserID: "emp-1"}, {UserID: "emp-2"}}, nil
	}

	users, err := f.build().ListVisibleUsers(context.Background(), actorID)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateUser_PhoneConflict(t *testing.T) {
	f := newUserFixture()
	f.userRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, CompanyID: testCompanyID, RoleID: "creator-role", Phone: "+14155550111"}, nil
	}
	f.userRepo.FindUserByPhoneFn = func(ctx context.Context, phone string) (*domain.User, error) {
		return &domain.User{UserID: "other", Phone: phone}, nil
	}

	_, err := f.build().UpdateUser(context.Background(), actorID, "user-2", dto.UpdateUserRequest{
		Phone: strPtr("+14155550999"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "user with this phone number already exists")
}

func TestUpdateUser_SamePhoneSkipsUniquenessCheck(t *testing.T) {
	f := newUserFixture()
	f.userRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, CompanyID: testCompanyID, RoleID: "creator-role", Phone: "+14155550111"}, nil
	}
	phoneChecked := false
	f.userRepo.FindUserByPhoneFn = func(ctx context.Context, phone string) (*domain.User, error) {
		phoneChecked = true
		return &domain.User{UserID: "other"}, nil
	}
	f.userRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		return nil
	}

	_, err := f.build().UpdateUser(context.Background(), actorID, "user-2", dto.UpdateUserRequest{
		Phone: strPtr("+14155550111"),
	})
	require.NoError(t, err)
	assert.False(t, phoneChecked)
}

func TestDeactivateUser_SoftDeletes(t *testing.T) {
	f := newUserFixture()
	var deletedID, deletedBy string
	f.userRepo.MarkUserDeletedFn = func(ctx context.Context, userID string, deletedAt time.Time, db string) error {
		deletedID = userID
		deletedBy = db
		return nil
	}

	err := f.build().DeactivateUser(context.Background(), actorID, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "user-2", deletedID)
	assert.Equal(t, actorID, deletedBy)
}
