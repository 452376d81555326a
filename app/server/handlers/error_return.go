package handlers

import (
	"github.com/labstack/echo/v4"
	"kaig-backend/app/server/types"
	"kaig-backend/app/server/utils"
	"net/http"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: utils.P(http.StatusText(statusCode)),
	})
}

// erMsg 带自定义说明的错误响应，只用于可以展示给用户的信息
func (a *App) erMsg(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: utils.P(message),
	})
}
