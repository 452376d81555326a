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

// dummyHash 用户不存在时也要做一次同等代价的校验，
// 让两种失败（没有这个用户 / 密码不对）在外部不可区分
const dummyHash = "$argon2id$v=19$m=65536,t=1,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写邮箱或密码
	if req.Email == "" || req.Password == "" {
		return a.erMsg(c, http.StatusBadRequest, "email and password are required")
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "email = ?", strings.ToLower(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_, _, _ = argon2id.CheckHash(req.Password, dummyHash)
			return a.erMsg(c, http.StatusUnauthorized, "invalid credentials")
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.PasswordHash); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		// 密码不一致，和用户不存在时返回完全一样
		return a.erMsg(c, http.StatusUnauthorized, "invalid credentials")
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
	return c.JSON(http.StatusOK, &types.AuthResponse{
		Token: token,
		User:  a.userInfo(&user),
	})
}
