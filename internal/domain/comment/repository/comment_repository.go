package repository

import (
	"time"

	"social_hub/internal/domain/comment/model"
	"social_hub/pkg/apperrors"

	"gorm.io/gorm"
)

// CommentRepository 接口定义
type CommentRepository interface {
	Create(comment *model.Comment) error
	GetByID(id int32) (*model.Comment, error)
	GetRootsByPost(postID int32) ([]model.Comment, error)
	GetRepliesByParent(parentID int32) ([]model.Comment, error)
	GetListByCreator(creatorID int32) ([]model.Comment, error)
	Exists(id int32) (bool, error)
	Update(comment *model.Comment) error
	SoftDelete(comment *model.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return apperrors.Wrap("creating comment", err)
	}
	return nil
}

func (r *commentRepository) GetByID(id int32) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, apperrors.TranslateNotFound(err, apperrors.EntityComment, id, "retrieving comment")
	}
	return &comment, nil
}

// GetRootsByPost 获取帖子下的根评论（直接挂在帖子上，无父评论）
func (r *commentRepository) GetRootsByPost(postID int32) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("post_id = ? AND parent_comment_id IS NULL", postID).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, apperrors.Wrap("retrieving root comments", err)
	}
	return comments, nil
}

// GetRepliesByParent 获取直接子回复，只取一层
func (r *commentRepository) GetRepliesByParent(parentID int32) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("parent_comment_id = ?", parentID).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, apperrors.Wrap("retrieving replies", err)
	}
	return comments, nil
}

func (r *commentRepository) GetListByCreator(creatorID int32) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("creator_id = ?", creatorID).
		Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, apperrors.Wrap("retrieving comments by creator", err)
	}
	return comments, nil
}

func (r *commentRepository) Exists(id int32) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Comment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap("checking comment existence", err)
	}
	return count > 0, nil
}

// Update 更新评论并刷新修改时间
func (r *commentRepository) Update(comment *model.Comment) error {
	now := time.Now().UTC()
	comment.ModifiedAt = &now
	if err := r.db.Save(comment).Error; err != nil {
		return apperrors.Wrap("updating comment", err)
	}
	return nil
}

// SoftDelete 软删除：只做状态迁移，行保留，回复不摘除
func (r *commentRepository) SoftDelete(comment *model.Comment) error {
	if err := r.db.Model(comment).Update("status", model.StatusDeleted).Error; err != nil {
		return apperrors.Wrap("deleting comment", err)
	}
	comment.Status = model.StatusDeleted
	return nil
}
