package constants

// 上传限制
const (
	UploadMaxFileSize = 10 << 20 // 10 MiB
)

// 允许上传的文件扩展名（小写）
var UploadAllowedExtensions = []string{".pdf", ".md"}
