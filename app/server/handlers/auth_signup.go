package handlers

import (
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"kaig-backend/app/server/constants"
	"kaig-backend/app/server/jwt"
	"kaig-backend/app/server/models"
	"kaig-backend/app/server/types"
	"net/http"
	"strings"
	"time"
)

func (a *App) AuthSignup(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.SignupRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写邮箱或密码
	if req.Email == "" || req.Password == "" {
		return a.erMsg(c, http.StatusBadRequest, "email and password are required")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户，邮箱统一转为小写。唯一索引冲突由数据库保证，
	// 并发的重复注册也只会成功一个
	user := models.User{
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		Role:         "user",
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.erMsg(c, http.StatusBadRequest, "email already registered")
		}
		a.l.Error("failed to create user", zap.String("email", user.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 签出 JWT
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:      user.ID,
		Role:    user.Role,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusCreated, &types.AuthResponse{
		Token: token,
		User:  a.userInfo(&user),
	})
}
