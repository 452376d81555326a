package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"kaig-backend/app/server/jwt"
	"net/http"
	"strings"
)

func (a *App) authUser(c echo.Context) (*jwt.User, error, int) {
	// 提取 token
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing auth token"), http.StatusUnauthorized
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return nil, fmt.Errorf("invalid auth header"), http.StatusUnauthorized
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return nil, fmt.Errorf("unknown auth method: %s", splits[0]), http.StatusUnauthorized
	}

	// 验证 token ，无效的情况（签名、有效期、主体形式）统一按无效处理
	jwtUser, err := a.jwt.ParseUser(splits[1])
	if err != nil {
		return nil, jwt.ErrInvalidToken, http.StatusUnauthorized
	}

	return jwtUser, nil, http.StatusOK
}
