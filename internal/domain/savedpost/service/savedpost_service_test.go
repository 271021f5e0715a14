package service

import (
	"testing"

	postmodel "social_hub/internal/domain/post/model"
	usermodel "social_hub/internal/domain/user/model"
	"social_hub/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSavedPostRepository is a mock of SavedPostRepository
type MockSavedPostRepository struct {
	mock.Mock
}

func (m *MockSavedPostRepository) Save(userID, postID int32) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockSavedPostRepository) Unsave(userID, postID int32) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockSavedPostRepository) GetSavedPosts(userID int32) ([]postmodel.Post, error) {
	args := m.Called(userID)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

// MockUserRepository is a mock of user repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *usermodel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int32) (*usermodel.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodel.User), args.Error(1)
}

func (m *MockUserRepository) GetList() ([]usermodel.User, error) {
	args := m.Called()
	return args.Get(0).([]usermodel.User), args.Error(1)
}

func (m *MockUserRepository) Exists(id int32) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *usermodel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(user *usermodel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockPostRepository is a mock of post repository.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *postmodel.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id int32) (*postmodel.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) GetList() ([]postmodel.Post, error) {
	args := m.Called()
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) GetListByCreator(creatorID int32) ([]postmodel.Post, error) {
	args := m.Called(creatorID)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockPostRepository) Exists(id int32) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Update(post *postmodel.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(post *postmodel.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func newSavedPostService() (*MockSavedPostRepository, *MockUserRepository, *MockPostRepository, SavedPostService) {
	mockRepo := new(MockSavedPostRepository)
	mockUsers := new(MockUserRepository)
	mockPosts := new(MockPostRepository)
	return mockRepo, mockUsers, mockPosts, NewSavedPostService(mockRepo, mockUsers, mockPosts)
}

func TestSavePost(t *testing.T) {
	t.Run("Save post success", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, service := newSavedPostService()

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockPosts.On("Exists", int32(10)).Return(true, nil)
		mockRepo.On("Save", int32(1), int32(10)).Return(nil)

		err := service.SavePost(1, 10)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repeated save is idempotent", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, service := newSavedPostService()

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockPosts.On("Exists", int32(10)).Return(true, nil)
		mockRepo.On("Save", int32(1), int32(10)).Return(nil).Twice()

		assert.NoError(t, service.SavePost(1, 10))
		assert.NoError(t, service.SavePost(1, 10))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown user rejected before post check", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, service := newSavedPostService()

		mockUsers.On("Exists", int32(99)).Return(false, nil)

		err := service.SavePost(99, 10)

		assert.True(t, apperrors.IsNotFound(err, apperrors.EntityUser))
		mockPosts.AssertNotCalled(t, "Exists", mock.Anything)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Unknown post rejected", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, service := newSavedPostService()

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockPosts.On("Exists", int32(404)).Return(false, nil)

		err := service.SavePost(1, 404)

		assert.True(t, apperrors.IsNotFound(err, apperrors.EntityPost))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUnsavePost(t *testing.T) {
	t.Run("Unsave skips existence checks and is a no-op without edge", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, service := newSavedPostService()

		mockRepo.On("Unsave", int32(1), int32(10)).Return(nil)

		err := service.UnsavePost(1, 10)

		assert.NoError(t, err)
		mockUsers.AssertNotCalled(t, "Exists", mock.Anything)
		mockPosts.AssertNotCalled(t, "Exists", mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetSavedPosts(t *testing.T) {
	t.Run("Saved posts of an existing user", func(t *testing.T) {
		mockRepo, mockUsers, _, service := newSavedPostService()
		posts := []postmodel.Post{{ID: 10, CreatorID: 2, Title: "Saved", Content: "Body"}}

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockRepo.On("GetSavedPosts", int32(1)).Return(posts, nil)

		result, err := service.GetSavedPosts(1)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown user returns NotFoundError", func(t *testing.T) {
		mockRepo, mockUsers, _, service := newSavedPostService()

		mockUsers.On("Exists", int32(99)).Return(false, nil)

		result, err := service.GetSavedPosts(99)

		assert.Nil(t, result)
		assert.True(t, apperrors.IsNotFound(err, apperrors.EntityUser))
		mockRepo.AssertNotCalled(t, "GetSavedPosts", mock.Anything)
	})
}
