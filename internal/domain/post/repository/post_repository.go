package repository

import (
	"time"

	"social_hub/internal/domain/post/model"
	"social_hub/pkg/apperrors"

	"gorm.io/gorm"
)

// PostRepository 接口定义
type PostRepository interface {
	Create(post *model.Post) error
	GetByID(id int32) (*model.Post, error)
	GetList() ([]model.Post, error)
	GetListByCreator(creatorID int32) ([]model.Post, error)
	Exists(id int32) (bool, error)
	Update(post *model.Post) error
	Delete(post *model.Post) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return apperrors.Wrap("creating post", err)
	}
	return nil
}

func (r *postRepository) GetByID(id int32) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, apperrors.TranslateNotFound(err, apperrors.EntityPost, id, "retrieving post")
	}
	return &post, nil
}

func (r *postRepository) GetList() ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, apperrors.Wrap("retrieving posts", err)
	}
	return posts, nil
}

func (r *postRepository) GetListByCreator(creatorID int32) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Where("creator_id = ?", creatorID).Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, apperrors.Wrap("retrieving posts by creator", err)
	}
	return posts, nil
}

func (r *postRepository) Exists(id int32) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap("checking post existence", err)
	}
	return count > 0, nil
}

// Update 更新帖子并刷新修改时间
func (r *postRepository) Update(post *model.Post) error {
	now := time.Now().UTC()
	post.ModifiedAt = &now
	if err := r.db.Save(post).Error; err != nil {
		return apperrors.Wrap("updating post", err)
	}
	return nil
}

// Delete 删除帖子（硬删除），评论、标签、点赞、收藏由外键级联删除
func (r *postRepository) Delete(post *model.Post) error {
	if err := r.db.Delete(post).Error; err != nil {
		return apperrors.Wrap("deleting post", err)
	}
	return nil
}
