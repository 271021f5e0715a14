package model

import "time"

// LikedPost 用户-帖子点赞边，存在即"已赞"
// 复合主键 (user_id, post_id) 防止重复点赞
type LikedPost struct {
	UserID    int32     `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	PostID    int32     `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LikedPost) TableName() string { return "user_liked_posts" }

// LikedComment 用户-评论点赞边
type LikedComment struct {
	UserID    int32     `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	CommentID int32     `gorm:"primaryKey;autoIncrement:false" json:"commentId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LikedComment) TableName() string { return "user_liked_comments" }
