package repository

import (
	"social_hub/internal/domain/user/model"
	"social_hub/pkg/apperrors"

	"gorm.io/gorm"
)

// UserRepository 接口定义
type UserRepository interface {
	Create(user *model.User) error
	GetByID(id int32) (*model.User, error)
	GetList() ([]model.User, error)
	Exists(id int32) (bool, error)
	Update(user *model.User) error
	Delete(user *model.User) error
}

// userRepository 实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建新的仓库实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 创建用户
// 邮箱唯一键冲突翻译为 ErrDuplicateEmail，其余持久层错误包装为 RepositoryError
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if apperrors.IsUniqueViolation(err, "ux_users_email") {
			return apperrors.ErrDuplicateEmail
		}
		return apperrors.Wrap("creating user", err)
	}
	return nil
}

// GetByID 根据ID获取用户
func (r *userRepository) GetByID(id int32) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, apperrors.TranslateNotFound(err, apperrors.EntityUser, id, "retrieving user")
	}
	return &user, nil
}

// GetList 获取用户列表
func (r *userRepository) GetList() ([]model.User, error) {
	var users []model.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, apperrors.Wrap("retrieving users", err)
	}
	return users, nil
}

// Exists 判断用户是否存在
func (r *userRepository) Exists(id int32) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap("checking user existence", err)
	}
	return count > 0, nil
}

// Update 更新用户
// 提交时重新检查邮箱唯一约束
func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if apperrors.IsUniqueViolation(err, "ux_users_email") {
			return apperrors.ErrDuplicateEmail
		}
		return apperrors.Wrap("updating user", err)
	}
	return nil
}

// Delete 删除用户（硬删除）
// 帖子、点赞、关注、收藏由外键级联删除；用户还有评论时外键 RESTRICT 使删除失败
func (r *userRepository) Delete(user *model.User) error {
	if err := r.db.Delete(user).Error; err != nil {
		return apperrors.Wrap("deleting user", err)
	}
	return nil
}
