package inits

import (
	"fmt"
	"kaig-backend/app/server/config"
	"os"
	"strings"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if ns, exist := os.LookupEnv("DB_NAMESPACE"); !exist {
		cfg.System.Namespace = "test" // 默认命名空间
	} else {
		cfg.System.Namespace = ns
	}

	if database, exist := os.LookupEnv("DB_DATABASE"); !exist {
		cfg.System.Database = "test" // 默认数据库范围
	} else {
		cfg.System.Database = database
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if issuer, exist := os.LookupEnv("JWT_ISSUER"); !exist {
		return nil, fmt.Errorf("JWT_ISSUER environment variable not set")
	} else {
		cfg.Security.JWTIssuer = issuer
	}

	if audience, exist := os.LookupEnv("JWT_AUDIENCE"); !exist {
		return nil, fmt.Errorf("JWT_AUDIENCE environment variable not set")
	} else {
		cfg.Security.JWTAudience = audience
	}

	return cfg, nil
}
