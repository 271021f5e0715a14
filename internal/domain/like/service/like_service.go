package service

import (
	commentmodel "social_hub/internal/domain/comment/model"
	commentrepo "social_hub/internal/domain/comment/repository"
	"social_hub/internal/domain/like/repository"
	postmodel "social_hub/internal/domain/post/model"
	postrepo "social_hub/internal/domain/post/repository"
	usermodel "social_hub/internal/domain/user/model"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/pkg/apperrors"
)

// LikeService 点赞服务接口
type LikeService interface {
	TogglePostLike(userID, postID int32) (liked bool, err error)
	ToggleCommentLike(userID, commentID int32) (liked bool, err error)
	GetLikedPosts(userID int32) ([]postmodel.Post, error)
	GetLikedComments(userID int32) ([]commentmodel.Comment, error)
	GetUsersWhoLikedPost(postID int32) ([]usermodel.User, error)
	GetUsersWhoLikedComment(commentID int32) ([]usermodel.User, error)
}

type likeService struct {
	repo        repository.LikeRepository
	userRepo    userrepo.UserRepository
	postRepo    postrepo.PostRepository
	commentRepo commentrepo.CommentRepository
}

func NewLikeService(repo repository.LikeRepository, userRepo userrepo.UserRepository,
	postRepo postrepo.PostRepository, commentRepo commentrepo.CommentRepository) LikeService {
	return &likeService{repo: repo, userRepo: userRepo, postRepo: postRepo, commentRepo: commentRepo}
}

// TogglePostLike 翻转帖子点赞，用户和帖子必须都存在
func (s *likeService) TogglePostLike(userID, postID int32) (bool, error) {
	if err := s.checkUser(userID); err != nil {
		return false, err
	}
	ok, err := s.postRepo.Exists(postID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperrors.NewPostNotFound(postID)
	}
	return s.repo.TogglePostLike(userID, postID)
}

// ToggleCommentLike 翻转评论点赞，用户和评论必须都存在
func (s *likeService) ToggleCommentLike(userID, commentID int32) (bool, error) {
	if err := s.checkUser(userID); err != nil {
		return false, err
	}
	ok, err := s.commentRepo.Exists(commentID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperrors.NewCommentNotFound(commentID)
	}
	return s.repo.ToggleCommentLike(userID, commentID)
}

func (s *likeService) GetLikedPosts(userID int32) ([]postmodel.Post, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	return s.repo.GetLikedPosts(userID)
}

func (s *likeService) GetLikedComments(userID int32) ([]commentmodel.Comment, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	return s.repo.GetLikedComments(userID)
}

func (s *likeService) GetUsersWhoLikedPost(postID int32) ([]usermodel.User, error) {
	ok, err := s.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewPostNotFound(postID)
	}
	return s.repo.GetUsersWhoLikedPost(postID)
}

func (s *likeService) GetUsersWhoLikedComment(commentID int32) ([]usermodel.User, error) {
	ok, err := s.commentRepo.Exists(commentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewCommentNotFound(commentID)
	}
	return s.repo.GetUsersWhoLikedComment(commentID)
}

func (s *likeService) checkUser(userID int32) error {
	ok, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewUserNotFound(userID)
	}
	return nil
}
