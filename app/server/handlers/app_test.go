package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"kaig-backend/app/server/inits"
	"kaig-backend/app/server/jwt"
	"kaig-backend/app/server/types"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "test-issuer"
	testAudience = "test-audience"
)

// newTestServer 准备一个带内存数据库的完整服务
func newTestServer(t *testing.T) (*echo.Echo, *App) {
	t.Helper()

	// 每个测试一个独立的共享内存库，连接池里的连接都指向同一个库
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, inits.Migrate(db))

	j, err := jwt.New(testSecret, testIssuer, testAudience, "testns", "testdb")
	require.NoError(t, err)

	a := NewApp(zap.NewNop(), db, j)
	e := echo.New()
	RegisterHandlers(e, a)

	return e, a
}

func doJSON(t *testing.T, e *echo.Echo, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeAuthResponse(t *testing.T, rec *httptest.ResponseRecorder) *types.AuthResponse {
	t.Helper()

	var res types.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return &res
}

// signupUser 注册一个用户并返回签出的 token 与用户信息
func signupUser(t *testing.T, e *echo.Echo, email string, password string) *types.AuthResponse {
	t.Helper()

	rec := doJSON(t, e, "/auth/signup", fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeAuthResponse(t, rec)
}

// multipartFile 构造只带一个 file 字段的 multipart 请求体
func multipartFile(t *testing.T, filename string, content []byte) (io.Reader, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func doUpload(t *testing.T, e *echo.Echo, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
