package service

import (
	postmodel "social_hub/internal/domain/post/model"
	postrepo "social_hub/internal/domain/post/repository"
	"social_hub/internal/domain/savedpost/repository"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/pkg/apperrors"
)

// SavedPostService 收藏服务接口
type SavedPostService interface {
	SavePost(userID, postID int32) error
	UnsavePost(userID, postID int32) error
	GetSavedPosts(userID int32) ([]postmodel.Post, error)
}

type savedPostService struct {
	repo     repository.SavedPostRepository
	userRepo userrepo.UserRepository
	postRepo postrepo.PostRepository
}

func NewSavedPostService(repo repository.SavedPostRepository, userRepo userrepo.UserRepository,
	postRepo postrepo.PostRepository) SavedPostService {
	return &savedPostService{repo: repo, userRepo: userRepo, postRepo: postRepo}
}

// SavePost 收藏帖子，用户和帖子必须都存在
func (s *savedPostService) SavePost(userID, postID int32) error {
	ok, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewUserNotFound(userID)
	}
	ok, err = s.postRepo.Exists(postID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewPostNotFound(postID)
	}
	return s.repo.Save(userID, postID)
}

// UnsavePost 取消收藏
// 只看收藏边本身，不检查用户/帖子是否存在；边不存在时是无操作
func (s *savedPostService) UnsavePost(userID, postID int32) error {
	return s.repo.Unsave(userID, postID)
}

// GetSavedPosts 获取用户收藏的帖子
func (s *savedPostService) GetSavedPosts(userID int32) ([]postmodel.Post, error) {
	ok, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewUserNotFound(userID)
	}
	return s.repo.GetSavedPosts(userID)
}
