package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"io"
	"kaig-backend/app/server/constants"
	"kaig-backend/app/server/models"
	"kaig-backend/app/server/types"
	"net/http"
	"path/filepath"
	"strings"
)

func (a *App) FileUpload(c echo.Context) error {
	// 抓取 user 信息（认证）。认证失败必须发生在读取表单内容之前，
	// 没有通过验证的请求不做任何存储操作
	jwtUser, err, statusCode := a.authUser(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.erMsg(c, statusCode, err.Error())
	}

	rctx := c.Request().Context()

	// 提取上传的文件
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "file is required")
	}

	// 校验扩展名（大小写不敏感）
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !extAllowed(ext) {
		return a.erMsg(c, http.StatusBadRequest, fmt.Sprintf(
			"only %s files are allowed",
			strings.Join(constants.UploadAllowedExtensions, ", "),
		))
	}

	// 校验大小，超限的内容连读都不读
	if fileHeader.Size > constants.UploadMaxFileSize {
		return a.erMsg(c, http.StatusBadRequest, "file exceeds 10MB limit")
	}

	// 读取文件内容
	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		a.l.Error("failed to read file content", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建记录，归属于 token 里的用户
	file := models.File{
		OwnerID:  jwtUser.ID,
		Filename: fileHeader.Filename,
		Content:  content,
	}
	if err := a.db.WithContext(rctx).Create(&file).Error; err != nil {
		a.l.Error("failed to create file", zap.String("filename", file.Filename), zap.Error(err))
		// 文件内容不是机密，这里把存储层的错误带给客户端方便排查
		return a.erMsg(c, http.StatusInternalServerError, fmt.Sprintf("failed to upload file: %s", err.Error()))
	}

	return c.JSON(http.StatusCreated, &types.FileUploadResponse{
		ID:       file.ID,
		Filename: file.Filename,
	})
}

func extAllowed(ext string) bool {
	for _, allowed := range constants.UploadAllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
