package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type User struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 基础信息
	Email       string `gorm:"column:email;uniqueIndex"` // 邮箱，全局唯一，存储前统一转为小写
	DisplayName string `gorm:"column:display_name"`      // 显示名称，可以为空

	// 登录与授权认证相关
	PasswordHash string `gorm:"column:password_hash"` // 密码，使用 argon2id 储存
	Role         string `gorm:"column:role"`          // 角色，默认为 user
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
