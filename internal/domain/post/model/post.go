package model

import "time"

// Post 帖子模型
type Post struct {
	ID         int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID  int32      `gorm:"index:idx_posts_creator;not null" json:"creatorId"`
	Title      string     `gorm:"size:200;not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"` // 仅在更新时刷新，创建时为空
}

func (Post) TableName() string { return "posts" }
