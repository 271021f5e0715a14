package repository

import (
	commentmodel "social_hub/internal/domain/comment/model"
	"social_hub/internal/domain/like/model"
	postmodel "social_hub/internal/domain/post/model"
	usermodel "social_hub/internal/domain/user/model"
	"social_hub/pkg/apperrors"

	"gorm.io/gorm"
)

// LikeRepository 接口定义
// Toggle 是对成员关系的翻转：边不存在则插入（点赞），存在则删除（取消点赞）。
// 调用方无法指定目标状态。
type LikeRepository interface {
	TogglePostLike(userID, postID int32) (liked bool, err error)
	ToggleCommentLike(userID, commentID int32) (liked bool, err error)
	GetLikedPosts(userID int32) ([]postmodel.Post, error)
	GetLikedComments(userID int32) ([]commentmodel.Comment, error)
	GetUsersWhoLikedPost(postID int32) ([]usermodel.User, error)
	GetUsersWhoLikedComment(commentID int32) ([]usermodel.User, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// TogglePostLike 翻转帖子点赞边
// 读和写在同一个事务里提交成单个工作单元；并发翻转同一条边仍可能互相竞争，
// 以数据库的隔离级别为准
func (r *likeRepository) TogglePostLike(userID, postID int32) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.LikedPost{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			liked = true
			return tx.Create(&model.LikedPost{UserID: userID, PostID: postID}).Error
		}
		liked = false
		return tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.LikedPost{}).Error
	})
	if err != nil {
		return false, apperrors.Wrap("toggling post like", err)
	}
	return liked, nil
}

// ToggleCommentLike 翻转评论点赞边
func (r *likeRepository) ToggleCommentLike(userID, commentID int32) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.LikedComment{}).
			Where("user_id = ? AND comment_id = ?", userID, commentID).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			liked = true
			return tx.Create(&model.LikedComment{UserID: userID, CommentID: commentID}).Error
		}
		liked = false
		return tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&model.LikedComment{}).Error
	})
	if err != nil {
		return false, apperrors.Wrap("toggling comment like", err)
	}
	return liked, nil
}

// GetLikedPosts 获取用户点过赞的帖子
func (r *likeRepository) GetLikedPosts(userID int32) ([]postmodel.Post, error) {
	var posts []postmodel.Post
	if err := r.db.Model(&postmodel.Post{}).
		Joins("JOIN user_liked_posts ulp ON ulp.post_id = posts.id").
		Where("ulp.user_id = ?", userID).
		Find(&posts).Error; err != nil {
		return nil, apperrors.Wrap("retrieving liked posts", err)
	}
	return posts, nil
}

// GetLikedComments 获取用户点过赞的评论
func (r *likeRepository) GetLikedComments(userID int32) ([]commentmodel.Comment, error) {
	var comments []commentmodel.Comment
	if err := r.db.Model(&commentmodel.Comment{}).
		Joins("JOIN user_liked_comments ulc ON ulc.comment_id = comments.id").
		Where("ulc.user_id = ?", userID).
		Find(&comments).Error; err != nil {
		return nil, apperrors.Wrap("retrieving liked comments", err)
	}
	return comments, nil
}

// GetUsersWhoLikedPost 获取给帖子点过赞的用户
func (r *likeRepository) GetUsersWhoLikedPost(postID int32) ([]usermodel.User, error) {
	var users []usermodel.User
	if err := r.db.Model(&usermodel.User{}).
		Joins("JOIN user_liked_posts ulp ON ulp.user_id = users.id").
		Where("ulp.post_id = ?", postID).
		Find(&users).Error; err != nil {
		return nil, apperrors.Wrap("retrieving users who liked post", err)
	}
	return users, nil
}

// GetUsersWhoLikedComment 获取给评论点过赞的用户
func (r *likeRepository) GetUsersWhoLikedComment(commentID int32) ([]usermodel.User, error) {
	var users []usermodel.User
	if err := r.db.Model(&usermodel.User{}).
		Joins("JOIN user_liked_comments ulc ON ulc.user_id = users.id").
		Where("ulc.comment_id = ?", commentID).
		Find(&users).Error; err != nil {
		return nil, apperrors.Wrap("retrieving users who liked comment", err)
	}
	return users, nil
}
