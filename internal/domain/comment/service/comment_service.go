package service

import (
	"social_hub/internal/domain/comment/model"
	"social_hub/internal/domain/comment/repository"
	postrepo "social_hub/internal/domain/post/repository"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/pkg/apperrors"
)

// CommentInput 创建/更新评论的输入
type CommentInput struct {
	CreatorID int32
	PostID    int32
	Content   string
}

// CommentService 评论服务接口
type CommentService interface {
	CreateRootComment(input CommentInput) (*model.Comment, error)
	CreateReply(parentID int32, input CommentInput) (*model.Comment, error)
	GetComment(id int32) (*model.Comment, error)
	GetRootComments(postID int32) ([]model.Comment, error)
	GetReplies(parentID int32) ([]model.Comment, error)
	GetCommentsByUser(userID int32) ([]model.Comment, error)
	UpdateComment(id int32, content string) (*model.Comment, error)
	DeleteComment(id int32) error
}

type commentService struct {
	repo     repository.CommentRepository
	postRepo postrepo.PostRepository
	userRepo userrepo.UserRepository
}

func NewCommentService(repo repository.CommentRepository, postRepo postrepo.PostRepository, userRepo userrepo.UserRepository) CommentService {
	return &commentService{repo: repo, postRepo: postRepo, userRepo: userRepo}
}

// CreateRootComment 创建根评论，插入前检查帖子和作者都存在
func (s *commentService) CreateRootComment(input CommentInput) (*model.Comment, error) {
	if err := s.checkPost(input.PostID); err != nil {
		return nil, err
	}
	if err := s.checkUser(input.CreatorID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		CreatorID: input.CreatorID,
		PostID:    input.PostID,
		Content:   input.Content,
		Status:    model.StatusActive,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply 创建回复
// 检查顺序固定：帖子、父评论、作者
func (s *commentService) CreateReply(parentID int32, input CommentInput) (*model.Comment, error) {
	if err := s.checkPost(input.PostID); err != nil {
		return nil, err
	}
	ok, err := s.repo.Exists(parentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewCommentNotFound(parentID)
	}
	if err := s.checkUser(input.CreatorID); err != nil {
		return nil, err
	}

	reply := &model.Comment{
		CreatorID:       input.CreatorID,
		PostID:          input.PostID,
		Content:         input.Content,
		Status:          model.StatusActive,
		ParentCommentID: &parentID,
	}
	if err := s.repo.Create(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *commentService) GetComment(id int32) (*model.Comment, error) {
	return s.repo.GetByID(id)
}

// GetRootComments 获取帖子的根评论，帖子不存在返回 PostNotFound
func (s *commentService) GetRootComments(postID int32) ([]model.Comment, error) {
	if err := s.checkPost(postID); err != nil {
		return nil, err
	}
	return s.repo.GetRootsByPost(postID)
}

// GetReplies 获取某条评论的直接回复，锚点不存在返回 CommentNotFound
func (s *commentService) GetReplies(parentID int32) ([]model.Comment, error) {
	ok, err := s.repo.Exists(parentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewCommentNotFound(parentID)
	}
	return s.repo.GetRepliesByParent(parentID)
}

func (s *commentService) GetCommentsByUser(userID int32) ([]model.Comment, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	return s.repo.GetListByCreator(userID)
}

// UpdateComment 更新评论内容，已软删除的评论视为不存在
func (s *commentService) UpdateComment(id int32, content string) (*model.Comment, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.IsDeleted() {
		return nil, apperrors.NewCommentNotFound(id)
	}

	comment.Content = content
	if err := s.repo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment 软删除评论
func (s *commentService) DeleteComment(id int32) error {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(comment)
}

func (s *commentService) checkPost(postID int32) error {
	ok, err := s.postRepo.Exists(postID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewPostNotFound(postID)
	}
	return nil
}

func (s *commentService) checkUser(userID int32) error {
	ok, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewUserNotFound(userID)
	}
	return nil
}
