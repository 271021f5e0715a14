package model

import "time"

// 评论生命周期状态。软删除是状态迁移而不是物理删除，
// 这样已删除评论下挂的回复仍保有引用完整性。
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Comment 评论模型
// ParentCommentID 为空表示挂在帖子下的根评论，否则是对另一条评论的回复。
// 回复深度不限，但查询只取直接子级。
type Comment struct {
	ID              int32      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatorID       int32      `gorm:"index:idx_comments_creator;not null" json:"creatorId"`
	PostID          int32      `gorm:"index:idx_comments_post;not null" json:"postId"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time  `json:"createdAt"`
	ModifiedAt      *time.Time `json:"modifiedAt,omitempty"`
	Status          string     `gorm:"size:16;not null;default:'active'" json:"status"`
	ParentCommentID *int32     `gorm:"index:idx_comments_parent" json:"parentCommentId,omitempty"`
}

func (Comment) TableName() string { return "comments" }

// IsDeleted 是否已软删除
func (c *Comment) IsDeleted() bool {
	return c.Status == StatusDeleted
}
