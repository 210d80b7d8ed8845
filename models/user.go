package models

import "time"

// User 频道/用户资料，由账号服务维护，这里只读
type User struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(128);not null;default:''" json:"email"`
	Avatar    string    `gorm:"column:avatar;type:varchar(512);not null;default:''" json:"avatar"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
