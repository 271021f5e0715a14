package service

import (
	"social_hub/internal/domain/post/model"
	"social_hub/internal/domain/post/repository"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/pkg/apperrors"
)

// PostInput 创建/更新帖子的输入
type PostInput struct {
	CreatorID int32
	Title     string
	Content   string
}

// PostService 帖子服务接口
type PostService interface {
	CreatePost(input PostInput) (*model.Post, error)
	GetPost(id int32) (*model.Post, error)
	GetPosts() ([]model.Post, error)
	GetPostsByUser(userID int32) ([]model.Post, error)
	UpdatePost(id int32, input PostInput) (*model.Post, error)
	DeletePost(id int32) error
}

type postService struct {
	repo     repository.PostRepository
	userRepo userrepo.UserRepository
}

func NewPostService(repo repository.PostRepository, userRepo userrepo.UserRepository) PostService {
	return &postService{repo: repo, userRepo: userRepo}
}

// CreatePost 创建帖子
// 创建前检查作者存在（统一前置检查策略），外键约束仍然兜底
func (s *postService) CreatePost(input PostInput) (*model.Post, error) {
	ok, err := s.userRepo.Exists(input.CreatorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewUserNotFound(input.CreatorID)
	}

	post := &model.Post{
		CreatorID: input.CreatorID,
		Title:     input.Title,
		Content:   input.Content,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) GetPost(id int32) (*model.Post, error) {
	return s.repo.GetByID(id)
}

func (s *postService) GetPosts() ([]model.Post, error) {
	return s.repo.GetList()
}

// GetPostsByUser 获取某用户的全部帖子，用户不存在时返回 UserNotFound
func (s *postService) GetPostsByUser(userID int32) ([]model.Post, error) {
	ok, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewUserNotFound(userID)
	}
	return s.repo.GetListByCreator(userID)
}

// UpdatePost 更新帖子，先取后改；仓库层会刷新修改时间
func (s *postService) UpdatePost(id int32, input PostInput) (*model.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) DeletePost(id int32) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(post)
}
