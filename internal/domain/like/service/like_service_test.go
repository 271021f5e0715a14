package service

import (
	"testing"

	commentmodel "social_hub/internal/domain/comment/model"
	postmodel "social_hub/internal/domain/post/model"
	usermodel "social_hub/internal/domain/user/model"
	"social_hub/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLikeRepository is a mock of LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) TogglePostLike(userID, postID int32) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ToggleCommentLike(userID, commentID int32) (bool, error) {
	args := m.Called(userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) GetLikedPosts(userID int32) ([]postmodel.Post, error) {
	args := m.Called(userID)
	return args.Get(0).([]postmodel.Post), args.Error(1)
}

func (m *MockLikeRepository) GetLikedComments(userID int32) ([]commentmodel.Comment, error) {
	args := m.Called(userID)
	return args.Get(0).([]commentmodel.Comment), args.Error(1)
}

func (m *MockLikeRepository) GetUsersWhoLikedPost(postID int32) ([]usermodel.User, error) {
	args := m.Called(postID)
	return args.Get(0).([]usermodel.User), args.Error(1)
}

func (m *MockLikeRepository) GetUsersWhoLikedComment(commentID int32) ([]usermodel.User, error) {
	args := m.Called(commentID)
	return args.Get(0).([]usermodel.User), args.Error(1)
}

// existsStub 只需要 Exists 的仓库桩，其余方法不会被点赞服务触达
type existsStub struct {
	mock.Mock
}

func (m *existsStub) Exists(id int32) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock of user repository.UserRepository
type MockUserRepository struct{ existsStub }

func (m *MockUserRepository) Create(user *usermodel.User) error { return nil }
func (m *MockUserRepository) GetByID(id int32) (*usermodel.User, error) {
	return nil, apperrors.NewUserNotFound(id)
}
func (m *MockUserRepository) GetList() ([]usermodel.User, error)  { return nil, nil }
func (m *MockUserRepository) Update(user *usermodel.User) error   { return nil }
func (m *MockUserRepository) Delete(user *usermodel.User) error   { return nil }

// MockPostRepository is a mock of post repository.PostRepository
type MockPostRepository struct{ existsStub }

func (m *MockPostRepository) Create(post *postmodel.Post) error { return nil }
func (m *MockPostRepository) GetByID(id int32) (*postmodel.Post, error) {
	return nil, apperrors.NewPostNotFound(id)
}
func (m *MockPostRepository) GetList() ([]postmodel.Post, error) { return nil, nil }
func (m *MockPostRepository) GetListByCreator(creatorID int32) ([]postmodel.Post, error) {
	return nil, nil
}
func (m *MockPostRepository) Update(post *postmodel.Post) error { return nil }
func (m *MockPostRepository) Delete(post *postmodel.Post) error { return nil }

// MockCommentRepository is a mock of comment repository.CommentRepository
type MockCommentRepository struct{ existsStub }

func (m *MockCommentRepository) Create(comment *commentmodel.Comment) error { return nil }
func (m *MockCommentRepository) GetByID(id int32) (*commentmodel.Comment, error) {
	return nil, apperrors.NewCommentNotFound(id)
}
func (m *MockCommentRepository) GetRootsByPost(postID int32) ([]commentmodel.Comment, error) {
	return nil, nil
}
func (m *MockCommentRepository) GetRepliesByParent(parentID int32) ([]commentmodel.Comment, error) {
	return nil, nil
}
func (m *MockCommentRepository) GetListByCreator(creatorID int32) ([]commentmodel.Comment, error) {
	return nil, nil
}
func (m *MockCommentRepository) Update(comment *commentmodel.Comment) error     { return nil }
func (m *MockCommentRepository) SoftDelete(comment *commentmodel.Comment) error { return nil }

func newLikeService() (*MockLikeRepository, *MockUserRepository, *MockPostRepository, *MockCommentRepository, LikeService) {
	mockRepo := new(MockLikeRepository)
	mockUsers := new(MockUserRepository)
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	return mockRepo, mockUsers, mockPosts, mockComments,
		NewLikeService(mockRepo, mockUsers, mockPosts, mockComments)
}

func TestTogglePostLike(t *testing.T) {
	t.Run("Toggle twice restores the original state", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, _, service := newLikeService()

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockPosts.On("Exists", int32(10)).Return(true, nil)
		mockRepo.On("TogglePostLike", int32(1), int32(10)).Return(true, nil).Once()
		mockRepo.On("TogglePostLike", int32(1), int32(10)).Return(false, nil).Once()

		liked, err := service.TogglePostLike(1, 10)
		assert.NoError(t, err)
		assert.True(t, liked)

		liked, err = service.TogglePostLike(1, 10)
		assert.NoError(t, err)
		assert.False(t, liked)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown user rejected before post check", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, _, service := newLikeService()

		mockUsers.On("Exists", int32(99)).Return(false, nil)

		liked, err := service.TogglePostLike(99, 10)

		assert.False(t, liked)
		assert.True(t, apperrors.IsNotFound(err, apperrors.EntityUser))
		mockPosts.AssertNotCalled(t, "Exists", mock.Anything)
		mockRepo.AssertNotCalled(t, "TogglePostLike", mock.Anything, mock.Anything)
	})

	t.Run("Unknown post rejected", func(t *testing.T) {
		mockRepo, mockUsers, mockPosts, _, service := newLikeService()

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockPosts.On("Exists", int32(404)).Return(false, nil)

		liked, err := service.TogglePostLike(1, 404)

		assert.False(t, liked)
		assert.True(t, apperrors.IsNotFound(err, apperrors.EntityPost))
		mockRepo.AssertNotCalled(t, "TogglePostLike", mock.Anything, mock.Anything)
	})
}

func TestToggleCommentLike(t *testing.T) {
	t.Run("Toggle comment like success", func(t *testing.T) {
		mockRepo, mockUsers, _, mockComments, service := newLikeService()

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockComments.On("Exists", int32(5)).Return(true, nil)
		mockRepo.On("ToggleCommentLike", int32(1), int32(5)).Return(true, nil)

		liked, err := service.ToggleCommentLike(1, 5)

		assert.NoError(t, err)
		assert.True(t, liked)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown comment rejected", func(t *testing.T) {
		mockRepo, mockUsers, _, mockComments, service := newLikeService()

		mockUsers.On("Exists", int32(1)).Return(true, nil)
		mockComments.On("Exists", int32(404)).Return(false, nil)

		liked, err := service.ToggleCommentLike(1, 404)

		assert.False(t, liked)
		assert.True(t, apperrors.IsNotFound(err, apperrors.EntityComment))
		mockRepo.AssertNotCalled(t, "ToggleCommentLike", mock.Anything, mock.Anything)
	})
}

func TestLikeTraversals(t *testing.T) {
	t.Run("Liked posts for unknown user returns NotFoundError", func(t *testing.T) {
		mockRepo, mockUsers, _, _, service := newLikeService()

		mockUsers.On("Exists", int32(99)).Return(false, nil)

		posts, err := service.GetLikedPosts(99)

		assert.Nil(t, posts)
		assert.True(t, apperrors.IsNotFound(err, apperrors.EntityUser))
		mockRepo.AssertNotCalled(t, "GetLikedPosts", mock.Anything)
	})

	t.Run("Users who liked a post", func(t *testing.T) {
		mockRepo, _, mockPosts, _, service := newLikeService()
		users := []usermodel.User{{ID: 1, Name: "Alice", Email: "a@example.com"}}

		mockPosts.On("Exists", int32(10)).Return(true, nil)
		mockRepo.On("GetUsersWhoLikedPost", int32(10)).Return(users, nil)

		result, err := service.GetUsersWhoLikedPost(10)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		mockRepo.AssertExpectations(t)
	})
}
