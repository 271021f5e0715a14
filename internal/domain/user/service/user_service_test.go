package service

import (
	"testing"

	"social_hub/internal/domain/user/model"
	"social_hub/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int32) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetList() ([]model.User, error) {
	args := m.Called()
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Exists(id int32) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func createTestUser(id int32, email string) *model.User {
	return &model.User{
		ID:       id,
		Name:     "TestUser",
		Email:    email,
		Password: "$2a$10$stored-hash",
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("Create user success with hashed password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

		user, err := service.CreateUser(UserInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "plain-secret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEqual(t, "plain-secret", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plain-secret")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email surfaces as ErrDuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(apperrors.ErrDuplicateEmail)

		user, err := service.CreateUser(UserInput{
			Name:     "Alice",
			Email:    "taken@example.com",
			Password: "plain-secret",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Get user success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)
		user := createTestUser(7, "bob@example.com")

		mockRepo.On("GetByID", int32(7)).Return(user, nil)

		result, err := service.GetUser(7)

		assert.NoError(t, err)
		assert.Equal(t, int32(7), result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown user returns NotFoundError", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByID", int32(99)).Return(nil, apperrors.NewUserNotFound(99))

		result, err := service.GetUser(99)

		assert.Nil(t, result)
		var nf *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nf)
		assert.Equal(t, apperrors.EntityUser, nf.Entity)
		assert.Equal(t, int32(99), nf.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetUsers(t *testing.T) {
	t.Run("Get users success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)
		users := []model.User{
			*createTestUser(1, "a@example.com"),
			*createTestUser(2, "b@example.com"),
		}

		mockRepo.On("GetList").Return(users, nil)

		result, err := service.GetUsers()

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Update user success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)
		user := createTestUser(3, "old@example.com")

		mockRepo.On("GetByID", int32(3)).Return(user, nil)
		mockRepo.On("Update", mock.AnythingOfType("*model.User")).Return(nil)

		result, err := service.UpdateUser(3, UserInput{
			Name:     "Renamed",
			Email:    "new@example.com",
			Password: "new-secret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", result.Name)
		assert.Equal(t, "new@example.com", result.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Update unknown user returns NotFoundError", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByID", int32(404)).Return(nil, apperrors.NewUserNotFound(404))

		result, err := service.UpdateUser(404, UserInput{
			Name:     "Ghost",
			Email:    "ghost@example.com",
			Password: "irrelevant",
		})

		assert.Nil(t, result)
		var nf *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nf)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Delete user success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)
		user := createTestUser(5, "gone@example.com")

		mockRepo.On("GetByID", int32(5)).Return(user, nil)
		mockRepo.On("Delete", user).Return(nil)

		err := service.DeleteUser(5)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Delete unknown user returns NotFoundError", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo)

		mockRepo.On("GetByID", int32(6)).Return(nil, apperrors.NewUserNotFound(6))

		err := service.DeleteUser(6)

		var nf *apperrors.NotFoundError
		assert.ErrorAs(t, err, &nf)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}
