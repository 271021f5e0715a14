package model

import "time"

// Follow 关注关系（follower 关注 followee）
// 复合主键 (follower_id, followee_id) 避免重复关注
type Follow struct {
	FollowerID int32     `gorm:"primaryKey;autoIncrement:false" json:"followerId"`
	FolloweeID int32     `gorm:"primaryKey;autoIncrement:false" json:"followeeId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Follow) TableName() string { return "follows" }
