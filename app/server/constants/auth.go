package constants

import "time"

// 认证相关
const (
	AuthTokenDuration = 24 * time.Hour // 签发的 JWT 有效期

	AccessContextRecord = "record_access" // 访问上下文标记 (ac)

	SubjectCollectionUser = "user" // 主体标识的集合前缀，形如 user:<id>
)
