package model

// User 用户模型
type User struct {
	ID       int32  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Email    string `gorm:"size:50;not null;uniqueIndex:ux_users_email" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"` // bcrypt 哈希，不返回给前端
}

func (User) TableName() string { return "users" }
