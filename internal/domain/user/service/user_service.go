package service

import (
	"social_hub/internal/domain/user/model"
	"social_hub/internal/domain/user/repository"
	"social_hub/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

// UserInput 创建/更新用户的输入
type UserInput struct {
	Name     string
	Email    string
	Password string
}

// UserService 用户服务接口
type UserService interface {
	CreateUser(input UserInput) (*model.User, error)
	GetUser(id int32) (*model.User, error)
	GetUsers() ([]model.User, error)
	UpdateUser(id int32, input UserInput) (*model.User, error)
	DeleteUser(id int32) error
}

// userService 实现
type userService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser 创建用户
// 重复邮箱不做前置检查，由数据库唯一约束兜底（并发下唯一可信）
func (s *userService) CreateUser(input UserInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap("hashing password", err)
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser 获取单个用户
func (s *userService) GetUser(id int32) (*model.User, error) {
	return s.repo.GetByID(id)
}

// GetUsers 获取用户列表
func (s *userService) GetUsers() ([]model.User, error) {
	return s.repo.GetList()
}

// UpdateUser 更新用户，先取后改，不存在直接返回 UserNotFound
func (s *userService) UpdateUser(id int32, input UserInput) (*model.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap("hashing password", err)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Password = string(hash)
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser 删除用户
func (s *userService) DeleteUser(id int32) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(user)
}
