package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminOwnerID 管理员保留账号，其记录作为共享默认数据对所有用户可见
const AdminOwnerID uint = 0

// User 用户模型
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// VisibleOwners 返回用户可读取的所有者集合：自己 + 管理员
func VisibleOwners(userID uint) []uint {
	if userID == AdminOwnerID {
		return []uint{AdminOwnerID}
	}
	return []uint{AdminOwnerID, userID}
}
