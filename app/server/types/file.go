package types

type FileUploadResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}
