package repository

import (
	postmodel "social_hub/internal/domain/post/model"
	"social_hub/internal/domain/savedpost/model"
	"social_hub/pkg/apperrors"

	"gorm.io/gorm"
)

// SavedPostRepository 接口定义
type SavedPostRepository interface {
	Save(userID, postID int32) error
	Unsave(userID, postID int32) error
	GetSavedPosts(userID int32) ([]postmodel.Post, error)
}

type savedPostRepository struct {
	db *gorm.DB
}

func NewSavedPostRepository(db *gorm.DB) SavedPostRepository {
	return &savedPostRepository{db: db}
}

// Save 收藏帖子，重复收藏吸收为无操作（幂等）
func (r *savedPostRepository) Save(userID, postID int32) error {
	edge := &model.SavedPost{UserID: userID, PostID: postID}
	if err := r.db.Create(edge).Error; err != nil {
		if apperrors.IsUniqueViolation(err, "") {
			return nil
		}
		return apperrors.Wrap("saving post", err)
	}
	return nil
}

// Unsave 取消收藏，收藏边不存在时静默无操作
func (r *savedPostRepository) Unsave(userID, postID int32) error {
	if err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.SavedPost{}).Error; err != nil {
		return apperrors.Wrap("unsaving post", err)
	}
	return nil
}

// GetSavedPosts 获取用户收藏的帖子
func (r *savedPostRepository) GetSavedPosts(userID int32) ([]postmodel.Post, error) {
	var posts []postmodel.Post
	if err := r.db.Model(&postmodel.Post{}).
		Joins("JOIN user_saved_posts usp ON usp.post_id = posts.id").
		Where("usp.user_id = ?", userID).
		Find(&posts).Error; err != nil {
		return nil, apperrors.Wrap("retrieving saved posts", err)
	}
	return posts, nil
}
