package services_test

import (
	"context"
	"errors"
	"testing"

	"userorders/internal/apperrors"
	"userorders/internal/models"
	"userorders/internal/repositories"
	"userorders/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ctx = context.Background()

func sampleUser() *models.User {
	return &models.User{
		UserID:   1,
		Username: "jdoe",
		Password: "secret",
		FullName: models.FullName{FirstName: "John", LastName: "Doe"},
		Age:      30,
		Email:    "john@example.com",
		IsActive: true,
		Hobbies:  models.Hobbies{"reading"},
		Address:  models.Address{Street: "1 Main St", City: "Dhaka", Country: "Bangladesh"},
	}
}

func newUserService(repo *MockUserRepository, pub services.EventPublisher) *services.UserService {
	return services.NewUserService(repo, services.NewBcryptHasher(bcrypt.MinCost), pub, zap.NewNop())
}

func hashedAs(plain string) interface{} {
	return mock.MatchedBy(func(u *models.User) bool {
		return u.Password != plain && bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
	})
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	h := services.NewBcryptHasher(5)
	hashed, err := h.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
}

func TestUserService_CreateUser(t *testing.T) {
	repo := new(MockUserRepository)
	pub := new(MockPublisher)
	service := newUserService(repo, pub)

	stored := sampleUser()
	stored.Password = ""
	stored.Orders = []models.Order{{ProductName: "Pen"}}

	repo.On("Create", ctx, hashedAs("secret")).Return(nil).Once()
	repo.On("GetByUserID", ctx, int64(1)).Return(stored, nil).Once()
	pub.On("PublishEvent", services.EventUserCreated, mock.AnythingOfType("services.UserEvent")).Return(nil).Once()

	created, err := service.CreateUser(ctx, sampleUser())
	require.NoError(t, err)
	assert.Equal(t, "jdoe", created.Username)
	assert.Empty(t, created.Password)
	assert.Nil(t, created.Orders)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	repo := new(MockUserRepository)
	pub := new(MockPublisher)
	service := newUserService(repo, pub)

	repo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Return(errors.Join(errors.New("failed to create user"), repositories.ErrDuplicate)).Once()

	created, err := service.CreateUser(ctx, sampleUser())
	assert.Nil(t, created)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
	assert.Contains(t, err.Error(), "already")
	pub.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestUserService_CreateUser_PublishFailureIsIgnored(t *testing.T) {
	repo := new(MockUserRepository)
	pub := new(MockPublisher)
	service := newUserService(repo, pub)

	repo.On("Create", ctx, mock.Anything).Return(nil).Once()
	repo.On("GetByUserID", ctx, int64(1)).Return(sampleUser(), nil).Once()
	pub.On("PublishEvent", services.EventUserCreated, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := service.CreateUser(ctx, sampleUser())
	assert.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestUserService_GetAllUsers(t *testing.T) {
	repo := new(MockUserRepository)
	service := newUserService(repo, nil)

	withOrders := *sampleUser()
	withOrders.Orders = []models.Order{{ProductName: "Pen", Price: 1, Quantity: 1}}
	repo.On("GetAll", ctx).Return([]models.User{withOrders}, nil).Once()

	users, err := service.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Nil(t, users[0].Orders)

	repo.On("GetAll", ctx).Return([]models.User{}, nil).Once()
	users, err = service.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	repo.AssertExpectations(t)
}

func TestUserService_GetUserByID(t *testing.T) {
	repo := new(MockUserRepository)
	service := newUserService(repo, nil)

	repo.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	repo.On("GetByUserID", ctx, int64(1)).Return(sampleUser(), nil).Once()

	user, err := service.GetUserByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Nil(t, user.Orders)
	repo.AssertExpectations(t)
}

func TestUserService_GateRejectsMissingAndNonNumericIDs(t *testing.T) {
	repo := new(MockUserRepository)
	service := newUserService(repo, nil)

	repo.On("Exists", ctx, int64(99)).Return(false, nil)

	for _, raw := range []string{"99", "abc", "", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			_, err := service.GetUserByID(ctx, raw)
			require.Error(t, err)
			assert.Equal(t, "User does not exist!", err.Error())
			assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

			_, err = service.UpdateUser(ctx, raw, sampleUser())
			assert.EqualError(t, err, "User does not exist!")

			_, err = service.DeleteUser(ctx, raw)
			assert.EqualError(t, err, "User does not exist!")
		})
	}

	repo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_GateStorageFailure(t *testing.T) {
	repo := new(MockUserRepository)
	service := newUserService(repo, nil)

	repo.On("Exists", ctx, int64(1)).Return(false, errors.New("connection refused")).Once()

	_, err := service.GetUserByID(ctx, "1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInternal))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUserService_UpdateUser(t *testing.T) {
	repo := new(MockUserRepository)
	pub := new(MockPublisher)
	service := newUserService(repo, pub)

	replacement := sampleUser()
	replacement.UserID = 2
	replacement.Username = "jdoe2"
	stored := *replacement
	stored.Password = ""
	stored.Orders = []models.Order{{ProductName: "Pen"}}

	repo.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	repo.On("Replace", ctx, int64(1), hashedAs("secret")).Return(nil).Once()
	repo.On("GetByUserID", ctx, int64(2)).Return(&stored, nil).Once()
	pub.On("PublishEvent", services.EventUserUpdated, mock.Anything).Return(nil).Once()

	updated, err := service.UpdateUser(ctx, "1", replacement)
	require.NoError(t, err)
	assert.Equal(t, "jdoe2", updated.Username)
	assert.Nil(t, updated.Orders)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestUserService_UpdateUser_DeletedAfterGate(t *testing.T) {
	repo := new(MockUserRepository)
	service := newUserService(repo, nil)

	repo.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	repo.On("Replace", ctx, int64(1), mock.Anything).Return(repositories.ErrNotFound).Once()

	_, err := service.UpdateUser(ctx, "1", sampleUser())
	assert.EqualError(t, err, "User does not exist!")
	repo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := new(MockUserRepository)
	pub := new(MockPublisher)
	service := newUserService(repo, pub)

	repo.On("Exists", ctx, int64(1)).Return(true, nil).Once()
	repo.On("Delete", ctx, int64(1)).Return(sampleUser(), nil).Once()
	pub.On("PublishEvent", services.EventUserDeleted, mock.MatchedBy(func(ev services.UserEvent) bool {
		return ev.UserID == 1 && ev.Username == "jdoe" && !ev.OccurredAt.IsZero()
	})).Return(nil).Once()

	deleted, err := service.DeleteUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", deleted.Username)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}
