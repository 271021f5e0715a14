package repository

import (
	postmodel "social_hub/internal/domain/post/model"
	"social_hub/internal/domain/tag/model"
	"social_hub/pkg/apperrors"

	"gorm.io/gorm"
)

// TagRepository 接口定义
type TagRepository interface {
	AddTagToPost(tagName string, postID int32) error
	GetTags() ([]string, error)
	GetPostsByTagName(tagName string) ([]postmodel.Post, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// AddTagToPost 给帖子打标签
// 同一帖子重复打同名标签触发复合主键冲突，吸收为无操作
func (r *tagRepository) AddTagToPost(tagName string, postID int32) error {
	tag := &model.PostTag{TagName: tagName, PostID: postID}
	if err := r.db.Create(tag).Error; err != nil {
		if apperrors.IsUniqueViolation(err, "") {
			return nil
		}
		return apperrors.Wrap("adding tag to post", err)
	}
	return nil
}

// GetTags 获取全部标签名（含重复，每条关联一行）
func (r *tagRepository) GetTags() ([]string, error) {
	var tags []string
	if err := r.db.Model(&model.PostTag{}).Pluck("tag_name", &tags).Error; err != nil {
		return nil, apperrors.Wrap("retrieving tags", err)
	}
	return tags, nil
}

// GetPostsByTagName 获取带某标签的帖子
func (r *tagRepository) GetPostsByTagName(tagName string) ([]postmodel.Post, error) {
	var posts []postmodel.Post
	if err := r.db.Model(&postmodel.Post{}).
		Joins("JOIN post_tags pt ON pt.post_id = posts.id").
		Where("pt.tag_name = ?", tagName).
		Find(&posts).Error; err != nil {
		return nil, apperrors.Wrap("retrieving posts by tag", err)
	}
	return posts, nil
}
