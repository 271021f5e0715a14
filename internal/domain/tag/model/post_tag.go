package model

// PostTag 帖子-标签关联
// 复合主键 (tag_name, post_id)；标签名是自由字符串，没有独立的标签实体
type PostTag struct {
	TagName string `gorm:"primaryKey;size:50" json:"tagName"`
	PostID  int32  `gorm:"primaryKey;autoIncrement:false" json:"postId"`
}

func (PostTag) TableName() string { return "post_tags" }
