package repository

import (
	"social_hub/internal/domain/follow/model"
	usermodel "social_hub/internal/domain/user/model"
	"social_hub/pkg/apperrors"

	"gorm.io/gorm"
)

// FollowRepository 接口定义
type FollowRepository interface {
	Create(followerID, followeeID int32) error
	Delete(followerID, followeeID int32) error
	GetFollowers(userID int32) ([]usermodel.User, error)
	GetFollowing(userID int32) ([]usermodel.User, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create 插入关注边
// 复合主键阻止重复边；对同一对用户重复关注触发的唯一键冲突吸收为无操作
func (r *followRepository) Create(followerID, followeeID int32) error {
	edge := &model.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := r.db.Create(edge).Error; err != nil {
		if apperrors.IsUniqueViolation(err, "") {
			return nil
		}
		return apperrors.Wrap("following user", err)
	}
	return nil
}

// Delete 删除关注边，边不存在时静默无操作
func (r *followRepository) Delete(followerID, followeeID int32) error {
	if err := r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{}).Error; err != nil {
		return apperrors.Wrap("unfollowing user", err)
	}
	return nil
}

// GetFollowers 获取关注 userID 的用户
func (r *followRepository) GetFollowers(userID int32) ([]usermodel.User, error) {
	var users []usermodel.User
	if err := r.db.Model(&usermodel.User{}).
		Joins("JOIN follows f ON f.follower_id = users.id").
		Where("f.followee_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, apperrors.Wrap("retrieving followers", err)
	}
	return users, nil
}

// GetFollowing 获取 userID 关注的用户
func (r *followRepository) GetFollowing(userID int32) ([]usermodel.User, error) {
	var users []usermodel.User
	if err := r.db.Model(&usermodel.User{}).
		Joins("JOIN follows f ON f.followee_id = users.id").
		Where("f.follower_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, apperrors.Wrap("retrieving following", err)
	}
	return users, nil
}
