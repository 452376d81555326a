package handlers

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"kaig-backend/app/server/jwt"
	"kaig-backend/app/server/models"
	"kaig-backend/app/server/types"
	"kaig-backend/app/server/utils"
)

type App struct {
	l   *zap.Logger // 日志
	db  *gorm.DB    // 数据库
	jwt *jwt.JWT    // JWT ，用于无状态验证
}

func NewApp(l *zap.Logger, db *gorm.DB, j *jwt.JWT) *App {
	return &App{
		l:   l,
		db:  db,
		jwt: j,
	}
}

// userInfo 用户的公开视图，密码散列绝不出现在响应里
func (a *App) userInfo(user *models.User) types.UserInfo {
	info := types.UserInfo{
		ID:    user.ID,
		Email: user.Email,
	}
	if user.DisplayName != "" {
		info.DisplayName = utils.P(user.DisplayName)
	}
	return info
}
