package dto

// StoredFile 单个已保存的作品图片
type StoredFile struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	Path         string `json:"path"`
}

// UploadResult 批量上传结果，失败的文件只记录原因
type UploadResult struct {
	Files  []StoredFile `json:"files"`
	Errors []string     `json:"errors"`
}

type ProfileImage struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}
