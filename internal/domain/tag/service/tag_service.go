package service

import (
	postmodel "social_hub/internal/domain/post/model"
	postrepo "social_hub/internal/domain/post/repository"
	"social_hub/internal/domain/tag/repository"
	"social_hub/pkg/apperrors"
)

// TagService 标签服务接口
type TagService interface {
	AddTagToPost(tagName string, postID int32) error
	GetTags() ([]string, error)
	GetPostsByTagName(tagName string) ([]postmodel.Post, error)
}

type tagService struct {
	repo     repository.TagRepository
	postRepo postrepo.PostRepository
}

func NewTagService(repo repository.TagRepository, postRepo postrepo.PostRepository) TagService {
	return &tagService{repo: repo, postRepo: postRepo}
}

// AddTagToPost 给帖子打标签
// 插入前检查帖子存在（统一前置检查策略），外键约束仍然兜底
func (s *tagService) AddTagToPost(tagName string, postID int32) error {
	ok, err := s.postRepo.Exists(postID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewPostNotFound(postID)
	}
	return s.repo.AddTagToPost(tagName, postID)
}

func (s *tagService) GetTags() ([]string, error) {
	return s.repo.GetTags()
}

func (s *tagService) GetPostsByTagName(tagName string) ([]postmodel.Post, error) {
	return s.repo.GetPostsByTagName(tagName)
}
