package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type File struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time

	OwnerID  string `gorm:"column:owner_id;type:uuid;index"` // 上传者（ user 记录）
	Owner    *User  `gorm:"foreignKey:OwnerID"`              // 关联的用户记录
	Filename string `gorm:"column:filename"`                 // 原始文件名
	Content  []byte `gorm:"column:content;type:bytea"`       // 文件内容（二进制）
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
