package jwt

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"kaig-backend/app/server/constants"
	"strings"
	"time"
)

// ErrInvalidToken 对外统一的验证失败错误：签名不对、过期、算法不符、格式损坏
// 都折叠成这一种，避免给调用方（以及客户端）泄露具体原因
var ErrInvalidToken = errors.New("invalid token")

type JWT struct {
	key       []byte
	issuer    string
	audience  string
	namespace string
	database  string
}

type User struct {
	ID      string // user 记录 id （不含集合前缀）
	Role    string // 角色，可以为空
	Expires int64  // Unix second
}

// Claims 完整的声明结构，所有字段在签发时显式填充
type Claims struct {
	jwt.RegisteredClaims

	Namespace     string `json:"ns"`
	Database      string `json:"db"`
	ID            string `json:"id"` // 主体标识，形如 user:<id>
	AccessContext string `json:"ac"`
	Role          string `json:"role,omitempty"`
}

func New(key string, issuer string, audience string, namespace string, database string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{
		key:       []byte(key),
		issuer:    issuer,
		audience:  audience,
		namespace: namespace,
		database:  database,
	}, nil
}

func (j *JWT) SignToken(user *User) (string, error) {
	// 创建声明
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Unix(user.Expires, 0)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
		},
		Namespace:     j.namespace,
		Database:      j.database,
		ID:            constants.SubjectCollectionUser + ":" + user.ID,
		AccessContext: constants.AccessContextRecord,
		Role:          user.Role,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	// 签名并返回
	return token.SignedString(j.key)
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, ErrInvalidToken
	}

	// 解析并验证签名、有效期、签发方、受众。算法必须严格是 HS512 ，
	// 防止算法混淆攻击
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	// 映射主体标识，必须是 user:<id> 的形式
	splits := strings.SplitN(claims.ID, ":", 2)
	if len(splits) != 2 || splits[0] != constants.SubjectCollectionUser || splits[1] == "" {
		return nil, ErrInvalidToken
	}

	return &User{
		ID:      splits[1],
		Role:    claims.Role,
		Expires: claims.ExpiresAt.Unix(),
	}, nil
}
