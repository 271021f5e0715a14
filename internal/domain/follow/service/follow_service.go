package service

import (
	"social_hub/internal/domain/follow/repository"
	usermodel "social_hub/internal/domain/user/model"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/pkg/apperrors"
)

// FollowService 关注服务接口
type FollowService interface {
	FollowUser(followerID, followeeID int32) error
	UnfollowUser(followerID, followeeID int32) error
	GetFollowers(userID int32) ([]usermodel.User, error)
	GetFollowing(userID int32) ([]usermodel.User, error)
}

type followService struct {
	repo     repository.FollowRepository
	userRepo userrepo.UserRepository
}

func NewFollowService(repo repository.FollowRepository, userRepo userrepo.UserRepository) FollowService {
	return &followService{repo: repo, userRepo: userRepo}
}

// FollowUser 关注用户，双方必须都存在
// 对已存在的关注边再次关注是无操作（仓库层吸收唯一键冲突）
func (s *followService) FollowUser(followerID, followeeID int32) error {
	if err := s.checkUser(followerID); err != nil {
		return err
	}
	if err := s.checkUser(followeeID); err != nil {
		return err
	}
	return s.repo.Create(followerID, followeeID)
}

// UnfollowUser 取消关注，双方必须都存在；边不存在时是无操作
func (s *followService) UnfollowUser(followerID, followeeID int32) error {
	if err := s.checkUser(followerID); err != nil {
		return err
	}
	if err := s.checkUser(followeeID); err != nil {
		return err
	}
	return s.repo.Delete(followerID, followeeID)
}

func (s *followService) GetFollowers(userID int32) ([]usermodel.User, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	return s.repo.GetFollowers(userID)
}

func (s *followService) GetFollowing(userID int32) ([]usermodel.User, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	return s.repo.GetFollowing(userID)
}

func (s *followService) checkUser(userID int32) error {
	ok, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewUserNotFound(userID)
	}
	return nil
}
