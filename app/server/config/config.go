package config

type Config struct {
	System struct {
		IsProd             bool   // 是否为生产环境
		Listen             string // 监听地址
		DBConnectionString string // Postgres 数据库的连接字符串
		Namespace          string // 命名空间，写入 token 的 ns 声明
		Database           string // 数据库范围，写入 token 的 db 声明
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生 JWT 签名，更新会导致旧有会话失效
		JWTIssuer          string // token 的签发方 (iss)
		JWTAudience        string // token 的受众 (aud)
	}
}
