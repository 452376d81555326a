package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"kaig-backend/app/server/apidocs"
	"kaig-backend/app/server/handlers"
	"kaig-backend/app/server/inits"
	"kaig-backend/app/server/jwt"
	"log"
)

func main() {
	// 本地开发时从 .env 读取环境变量，没有这个文件也没关系
	_ = godotenv.Load()

	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(
		cfg.Security.SignatureSecretKey,
		cfg.Security.JWTIssuer,
		cfg.Security.JWTAudience,
		cfg.System.Namespace,
		cfg.System.Database,
	)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, j)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlers.RegisterHandlers(e, handlerApp)

	// 添加 API 文档
	if !cfg.System.IsProd {
		e.Pre(apidocs.Doc("/api", apidocs.SpecJSON()))
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
