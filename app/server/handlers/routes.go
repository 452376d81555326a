package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

// RegisterHandlers 绑定全部路由
func RegisterHandlers(e *echo.Echo, a *App) {
	e.GET("/healthz", a.HealthCheck)

	e.POST("/auth/signup", a.AuthSignup)
	e.POST("/auth/login", a.AuthLogin)

	e.POST("/files/upload", a.FileUpload)
}

func (a *App) HealthCheck(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
