package model

import "time"

// SavedPost 用户收藏帖子边
// 复合主键 (user_id, post_id)，收藏是幂等的
type SavedPost struct {
	UserID    int32     `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	PostID    int32     `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SavedPost) TableName() string { return "user_saved_posts" }
